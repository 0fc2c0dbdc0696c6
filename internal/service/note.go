package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/skilltrackhq/skilltrack/internal/repository"
	"github.com/skilltrackhq/skilltrack/internal/validation"
)

var (
	ErrInvalidNoteType = errors.New("invalid note type")
)

type NoteService struct {
	repo        repository.NoteRepository
	skillRepo   repository.SkillRepository
	fileService *FileService
}

func NewNoteService(
	repo repository.NoteRepository,
	skillRepo repository.SkillRepository,
	fileService *FileService,
) *NoteService {
	return &NoteService{
		repo:        repo,
		skillRepo:   skillRepo,
		fileService: fileService,
	}
}

// Add creates a note for a skill and stores its document.
func (s *NoteService) Add(userID, skillID, title, noteType string, file multipart.File, header *multipart.FileHeader) (*model.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	if !model.ValidNoteType(noteType) {
		return nil, ErrInvalidNoteType
	}

	_, err := s.skillRepo.ByID(userID, skillID)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateFile(header, validation.DocumentConstraints, validation.ImageConstraints)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}

	note := &model.Note{
		ID:         uuid.New().String(),
		UserID:     userID,
		SkillID:    skillID,
		Title:      title,
		NoteType:   noteType,
		UploadedAt: time.Now(),
	}

	err = s.repo.Create(note)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.fileService.Upload(userID, model.FileOwnerNote, note.ID, model.FileTypeNotes, file, header)
	if err != nil {
		delErr := s.repo.Delete(userID, note.ID)
		if delErr != nil && !errors.Is(delErr, repository.ErrNoteNotFound) {
			return nil, delErr
		}
		return nil, err
	}

	note.FileURL = s.fileService.URL(uploaded)
	return note, nil
}

// Notes lists a user's notes, newest first, with resolved file URLs.
func (s *NoteService) Notes(userID, skillID string) ([]*model.Note, error) {
	var notes []*model.Note
	var err error

	if skillID != "" {
		notes, err = s.repo.NotesBySkill(userID, skillID)
	} else {
		notes, err = s.repo.Notes(userID)
	}
	if err != nil {
		return nil, err
	}

	for _, note := range notes {
		s.resolveFileURL(note)
	}

	return notes, nil
}

func (s *NoteService) Recent(userID string, limit int) ([]*model.Note, error) {
	notes, err := s.repo.Recent(userID, limit)
	if err != nil {
		return nil, err
	}

	for _, note := range notes {
		s.resolveFileURL(note)
	}

	return notes, nil
}

func (s *NoteService) Delete(userID, noteID string) error {
	note, err := s.repo.ByID(userID, noteID)
	if err != nil {
		return err
	}

	err = s.fileService.DeleteOwnerFiles(model.FileOwnerNote, note.ID)
	if err != nil {
		return err
	}

	return s.repo.Delete(userID, noteID)
}

func (s *NoteService) resolveFileURL(note *model.Note) {
	file, err := s.fileService.FileByType(model.FileOwnerNote, note.ID, model.FileTypeNotes)
	if err != nil {
		return
	}
	note.FileURL = s.fileService.URL(file)
}
