package handler

import (
	"net/http"
	"time"

	"github.com/skilltrackhq/skilltrack/internal/ctxkeys"
	"github.com/skilltrackhq/skilltrack/internal/service"
)

const maxUploadMemory = 10 << 20

type goalHandler struct {
	goalService *service.GoalService
	fileService *service.FileService
}

func NewGoalHandler(goalService *service.GoalService, fileService *service.FileService) *goalHandler {
	return &goalHandler{
		goalService: goalService,
		fileService: fileService,
	}
}

type goalRequest struct {
	SkillID         string `json:"skill_id"`
	Description     string `json:"description"`
	StartDate       string `json:"start_date"`
	TargetDate      string `json:"target_date"`
	DailyStudyHours *int   `json:"daily_study_hours"`
}

func (h *goalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.Goals(user.ID, r.URL.Query().Get("skill_id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, goals)
}

func (h *goalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req goalRequest
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

	targetDate, err := parseDate(req.TargetDate)
	if err != nil || targetDate.IsZero() {
		respondError(w, http.StatusBadRequest, "invalid target_date, expected YYYY-MM-DD")
		return
	}

	goal, err := h.goalService.Create(user.ID, req.SkillID, req.Description, startDate, targetDate, req.DailyStudyHours)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, goal)
}

func (h *goalHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goal, err := h.goalService.Goal(user.ID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	progress, err := h.goalService.Progress(user.ID, goal.ID, time.Now())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"goal":     goal,
		"progress": progress,
	})
}

func (h *goalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req goalRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	targetDate, err := parseDate(req.TargetDate)
	if err != nil || targetDate.IsZero() {
		respondError(w, http.StatusBadRequest, "invalid target_date, expected YYYY-MM-DD")
		return
	}

	goal, err := h.goalService.Update(user.ID, r.PathValue("id"), req.Description, targetDate, req.DailyStudyHours)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func (h *goalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	skillCompleted, err := h.goalService.Complete(user.ID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"completed":       true,
		"skill_completed": skillCompleted,
	})
}

func (h *goalHandler) UploadRoadmap(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	uploaded, err := h.goalService.AttachRoadmap(user.ID, r.PathValue("id"), file, header)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	uploaded.URL = h.fileService.URL(uploaded)
	respondJSON(w, http.StatusCreated, uploaded)
}

func (h *goalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.goalService.Delete(user.ID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
