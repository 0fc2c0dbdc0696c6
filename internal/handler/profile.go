package handler

import (
	"net/http"

	"github.com/skilltrackhq/skilltrack/internal/ctxkeys"
	"github.com/skilltrackhq/skilltrack/internal/service"
)

type profileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *profileHandler {
	return &profileHandler{
		profileService: profileService,
	}
}

type profileRequest struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	ExperienceLevel string `json:"experience_level"`
	Education       string `json:"education"`
}

func (h *profileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile := ctxkeys.Profile(r.Context())
	respondJSON(w, http.StatusOK, profile)
}

func (h *profileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req profileRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.profileService.Update(user.ID, req.Name, req.Role, req.ExperienceLevel, req.Education)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}
