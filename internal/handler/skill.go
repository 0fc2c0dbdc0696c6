package handler

import (
	"net/http"
	"time"

	"github.com/skilltrackhq/skilltrack/internal/ctxkeys"
	"github.com/skilltrackhq/skilltrack/internal/service"
)

type skillHandler struct {
	skillService     *service.SkillService
	dashboardService *service.DashboardService
}

func NewSkillHandler(skillService *service.SkillService, dashboardService *service.DashboardService) *skillHandler {
	return &skillHandler{
		skillService:     skillService,
		dashboardService: dashboardService,
	}
}

type skillRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Proficiency string `json:"proficiency"`
	StartDate   string `json:"start_date"`
	IsActive    *bool  `json:"is_active"`
}

func (h *skillHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	skills, err := h.skillService.Skills(user.ID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, skills)
}

func (h *skillHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	stats, err := h.skillService.Stats(user.ID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

func (h *skillHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req skillRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
		return
	}

	skill, err := h.skillService.Create(user.ID, req.Title, req.Description, req.Proficiency, startDate)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, skill)
}

func (h *skillHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	skill, err := h.skillService.Skill(user.ID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, skill)
}

func (h *skillHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req skillRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	skill, err := h.skillService.Update(user.ID, r.PathValue("id"), req.Title, req.Description, req.Proficiency, isActive)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, skill)
}

func (h *skillHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	skill, err := h.skillService.Complete(user.ID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, skill)
}

func (h *skillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.skillService.Delete(user.ID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func (h *skillHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	result, err := h.dashboardService.SkillAnalytics(user.ID, r.PathValue("id"), time.Now())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// parseDate accepts an empty string (zero time) or YYYY-MM-DD.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", value)
}
