package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/skilltrackhq/skilltrack/internal/repository"
	"github.com/skilltrackhq/skilltrack/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps the service/repository sentinels onto HTTP
// statuses. Anything unrecognized is a 500 and gets logged.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrSkillNotFound),
		errors.Is(err, repository.ErrGoalNotFound),
		errors.Is(err, repository.ErrProgressNotFound),
		errors.Is(err, repository.ErrNoteNotFound),
		errors.Is(err, repository.ErrFileNotFound),
		errors.Is(err, repository.ErrProfileNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyLoggedToday):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrEmailAlreadyExists):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrDescriptionRequired),
		errors.Is(err, service.ErrInvalidProficiency),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrInvalidDailyHours),
		errors.Is(err, service.ErrInvalidActualTime),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidNoteType),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidExperience),
		errors.Is(err, service.ErrGoalAlreadyCompleted),
		errors.Is(err, service.ErrInvalidFile),
		errors.Is(err, service.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("request failed", "error", err, "path", r.URL.Path, "method", r.Method)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
