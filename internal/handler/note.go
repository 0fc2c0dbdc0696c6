package handler

import (
	"net/http"

	"github.com/skilltrackhq/skilltrack/internal/ctxkeys"
	"github.com/skilltrackhq/skilltrack/internal/service"
)

type noteHandler struct {
	noteService *service.NoteService
}

func NewNoteHandler(noteService *service.NoteService) *noteHandler {
	return &noteHandler{
		noteService: noteService,
	}
}

func (h *noteHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	notes, err := h.noteService.Notes(user.ID, r.URL.Query().Get("skill_id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, notes)
}

func (h *noteHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	note, err := h.noteService.Add(
		user.ID,
		r.PathValue("id"),
		r.FormValue("title"),
		r.FormValue("note_type"),
		file,
		header,
	)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, note)
}

func (h *noteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.noteService.Delete(user.ID, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
