package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/skilltrackhq/skilltrack/internal/ctxkeys"
	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/skilltrackhq/skilltrack/internal/service"
)

type progressHandler struct {
	progressService *service.ProgressService
	fileService     *service.FileService
}

func NewProgressHandler(progressService *service.ProgressService, fileService *service.FileService) *progressHandler {
	return &progressHandler{
		progressService: progressService,
		fileService:     fileService,
	}
}

type progressRequest struct {
	ActualTime        int    `json:"actual_time"`
	ProjectDone       bool   `json:"project_done"`
	ProjectUpdate     string `json:"project_update"`
	CertificationDone bool   `json:"certification_done"`
	TopicsDone        string `json:"topics_done"`
	NewTopicDone      bool   `json:"new_topic_done"`
	TopicNotes        bool   `json:"topic_notes"`
	Feedback          string `json:"feedback"`
	ConfidenceLevel   int    `json:"confidence_level"`
	SelfRating        int    `json:"self_rating"`
}

func (r progressRequest) toInput() service.LogInput {
	return service.LogInput{
		ActualTime:        r.ActualTime,
		ProjectDone:       r.ProjectDone,
		ProjectUpdate:     r.ProjectUpdate,
		CertificationDone: r.CertificationDone,
		TopicsDone:        r.TopicsDone,
		NewTopicDone:      r.NewTopicDone,
		TopicNotes:        r.TopicNotes,
		Feedback:          r.Feedback,
		ConfidenceLevel:   r.ConfidenceLevel,
		SelfRating:        r.SelfRating,
	}
}

func (h *progressHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "invalid days parameter")
			return
		}
		days = parsed
	}

	entries, err := h.progressService.Entries(user.ID, r.URL.Query().Get("skill_id"), days)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

func (h *progressHandler) Log(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req progressRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, goalDue, err := h.progressService.Log(user.ID, r.PathValue("id"), req.toInput(), time.Now())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"entry":    entry,
		"goal_due": goalDue,
	})
}

func (h *progressHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req progressRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.progressService.Update(user.ID, r.PathValue("id"), req.toInput())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

func (h *progressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.progressService.Delete(user.ID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func (h *progressHandler) UploadCertificate(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.progressService.AttachCertificate)
}

func (h *progressHandler) UploadNotes(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.progressService.AttachNotes)
}

func (h *progressHandler) upload(w http.ResponseWriter, r *http.Request, attach func(userID, entryID string, file multipart.File, header *multipart.FileHeader) (*model.File, error)) {
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

	uploaded, err := attach(user.ID, r.PathValue("id"), file, header)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	uploaded.URL = h.fileService.URL(uploaded)
	respondJSON(w, http.StatusCreated, uploaded)
}
