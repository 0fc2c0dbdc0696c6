package service

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/skilltrackhq/skilltrack/internal/repository"
	"github.com/skilltrackhq/skilltrack/internal/validation"
)

var (
	ErrAlreadyLoggedToday = errors.New("progress already logged for this skill today")
	ErrInvalidActualTime  = errors.New("actual time must not be negative")
	ErrInvalidRating      = errors.New("rating must be between 1 and 10")
)

// LogInput carries the user-submitted fields of a daily progress entry.
// Planned time and extra time are derived, not submitted.
type LogInput struct {
	ActualTime        int
	ProjectDone       bool
	ProjectUpdate     string
	CertificationDone bool
	TopicsDone        string
	NewTopicDone      bool
	TopicNotes        bool
	Feedback          string
	ConfidenceLevel   int
	SelfRating        int
}

type ProgressService struct {
	repo        repository.ProgressRepository
	skillRepo   repository.SkillRepository
	goalRepo    repository.GoalRepository
	fileService *FileService
}

func NewProgressService(
	repo repository.ProgressRepository,
	skillRepo repository.SkillRepository,
	goalRepo repository.GoalRepository,
	fileService *FileService,
) *ProgressService {
	return &ProgressService{
		repo:        repo,
		skillRepo:   skillRepo,
		goalRepo:    goalRepo,
		fileService: fileService,
	}
}

// Log records today's study time for a skill. Planned time is copied
// from the newest open goal's daily rate, extra time is whatever the
// user studied beyond the plan, and a second entry for the same day is
// rejected. GoalDue reports that the open goal's target date has
// arrived, so the caller can prompt for completion.
func (s *ProgressService) Log(userID, skillID string, input LogInput, today time.Time) (entry *model.ProgressEntry, goalDue bool, err error) {
	if input.ActualTime < 0 {
		return nil, false, ErrInvalidActualTime
	}

	if input.ConfidenceLevel != 0 && (input.ConfidenceLevel < 1 || input.ConfidenceLevel > 10) {
		return nil, false, ErrInvalidRating
	}

	if input.SelfRating != 0 && (input.SelfRating < 1 || input.SelfRating > 10) {
		return nil, false, ErrInvalidRating
	}

	_, err = s.skillRepo.ByID(userID, skillID)
	if err != nil {
		return nil, false, err
	}

	day := model.DateOnly(today)

	exists, err := s.repo.ExistsForDay(userID, skillID, day)
	if err != nil {
		return nil, false, err
	}
	if exists {
		return nil, false, ErrAlreadyLoggedToday
	}

	plannedTime := 0
	goal, err := s.goalRepo.NewestIncomplete(userID, skillID)
	if err == nil {
		plannedTime = goal.DailyRate()
		goalDue = !day.Before(model.DateOnly(goal.TargetDate))
	} else if !errors.Is(err, repository.ErrGoalNotFound) {
		return nil, false, err
	}

	extraTime := 0
	if input.ActualTime > plannedTime {
		extraTime = input.ActualTime - plannedTime
	}

	now := time.Now()
	entry = &model.ProgressEntry{
		ID:                uuid.New().String(),
		UserID:            userID,
		SkillID:           skillID,
		EntryDate:         day,
		PlannedTime:       plannedTime,
		ActualTime:        input.ActualTime,
		ExtraTime:         extraTime,
		ProjectDone:       input.ProjectDone,
		ProjectUpdate:     input.ProjectUpdate,
		CertificationDone: input.CertificationDone,
		TopicsDone:        input.TopicsDone,
		NewTopicDone:      input.NewTopicDone,
		TopicNotes:        input.TopicNotes,
		Feedback:          input.Feedback,
		ConfidenceLevel:   input.ConfidenceLevel,
		SelfRating:        input.SelfRating,
		IsCompleted:       plannedTime > 0 && input.ActualTime >= plannedTime,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = s.repo.Create(entry)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateProgress) {
			return nil, false, ErrAlreadyLoggedToday
		}
		return nil, false, fmt.Errorf("failed to create progress entry: %w", err)
	}

	err = s.skillRepo.SetLastPracticed(userID, skillID, day)
	if err != nil {
		slog.Warn("failed to stamp last practiced", "error", err, "skill_id", skillID)
	}

	return entry, goalDue, nil
}

func (s *ProgressService) Entry(userID, entryID string) (*model.ProgressEntry, error) {
	return s.repo.ByID(userID, entryID)
}

// Entries lists progress, optionally scoped to a skill or to the last
// N days.
func (s *ProgressService) Entries(userID, skillID string, days int) ([]*model.ProgressEntry, error) {
	if skillID != "" {
		return s.repo.EntriesBySkill(userID, skillID)
	}
	if days > 0 {
		from := model.DateOnly(time.Now()).AddDate(0, 0, -days)
		return s.repo.EntriesSince(userID, from)
	}
	return s.repo.Entries(userID)
}

func (s *ProgressService) Update(userID, entryID string, input LogInput) (*model.ProgressEntry, error) {
	if input.ActualTime < 0 {
		return nil, ErrInvalidActualTime
	}

	if input.ConfidenceLevel != 0 && (input.ConfidenceLevel < 1 || input.ConfidenceLevel > 10) {
		return nil, ErrInvalidRating
	}

	if input.SelfRating != 0 && (input.SelfRating < 1 || input.SelfRating > 10) {
		return nil, ErrInvalidRating
	}

	entry, err := s.repo.ByID(userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.ActualTime = input.ActualTime
	entry.ExtraTime = 0
	if input.ActualTime > entry.PlannedTime {
		entry.ExtraTime = input.ActualTime - entry.PlannedTime
	}
	entry.ProjectDone = input.ProjectDone
	entry.ProjectUpdate = input.ProjectUpdate
	entry.CertificationDone = input.CertificationDone
	entry.TopicsDone = input.TopicsDone
	entry.NewTopicDone = input.NewTopicDone
	entry.TopicNotes = input.TopicNotes
	entry.Feedback = input.Feedback
	entry.ConfidenceLevel = input.ConfidenceLevel
	entry.SelfRating = input.SelfRating
	entry.IsCompleted = entry.PlannedTime > 0 && entry.ActualTime >= entry.PlannedTime

	err = s.repo.Update(entry)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *ProgressService) Delete(userID, entryID string) error {
	entry, err := s.repo.ByID(userID, entryID)
	if err != nil {
		return err
	}

	err = s.fileService.DeleteOwnerFiles(model.FileOwnerProgress, entry.ID)
	if err != nil {
		return err
	}

	return s.repo.Delete(userID, entryID)
}

// AttachCertificate uploads a certificate file for a progress entry.
func (s *ProgressService) AttachCertificate(userID, entryID string, file multipart.File, header *multipart.FileHeader) (*model.File, error) {
	return s.attach(userID, entryID, model.FileTypeCertificate, file, header)
}

// AttachNotes uploads a study-notes document for a progress entry.
func (s *ProgressService) AttachNotes(userID, entryID string, file multipart.File, header *multipart.FileHeader) (*model.File, error) {
	return s.attach(userID, entryID, model.FileTypeNotes, file, header)
}

func (s *ProgressService) attach(userID, entryID, fileType string, file multipart.File, header *multipart.FileHeader) (*model.File, error) {
	entry, err := s.repo.ByID(userID, entryID)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateFile(header, validation.DocumentConstraints, validation.ImageConstraints)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}

	return s.fileService.Upload(userID, model.FileOwnerProgress, entry.ID, fileType, file, header)
}
