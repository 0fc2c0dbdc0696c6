package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/skilltrackhq/skilltrack/internal/repository"
)

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrInvalidProficiency = errors.New("invalid proficiency level")
)

type SkillService struct {
	repo         repository.SkillRepository
	goalRepo     repository.GoalRepository
	progressRepo repository.ProgressRepository
	noteRepo     repository.NoteRepository
	fileService  *FileService
}

func NewSkillService(
	repo repository.SkillRepository,
	goalRepo repository.GoalRepository,
	progressRepo repository.ProgressRepository,
	noteRepo repository.NoteRepository,
	fileService *FileService,
) *SkillService {
	return &SkillService{
		repo:         repo,
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
		noteRepo:     noteRepo,
		fileService:  fileService,
	}
}

func (s *SkillService) Create(userID, title, description, proficiency string, startDate time.Time) (*model.Skill, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	if !model.ValidProficiency(proficiency) {
		return nil, ErrInvalidProficiency
	}

	if startDate.IsZero() {
		startDate = model.DateOnly(time.Now())
	}

	now := time.Now()
	skill := &model.Skill{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Proficiency: proficiency,
		StartDate:   startDate,
		IsActive:    true,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.repo.Create(skill)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return skill, nil
}

func (s *SkillService) Skill(userID, skillID string) (*model.Skill, error) {
	return s.repo.ByID(userID, skillID)
}

func (s *SkillService) Skills(userID string) ([]*model.Skill, error) {
	return s.repo.Skills(userID)
}

func (s *SkillService) Stats(userID string) (*model.SkillStats, error) {
	return s.repo.Stats(userID)
}

func (s *SkillService) Update(userID, skillID, title, description, proficiency string, isActive bool) (*model.Skill, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	if !model.ValidProficiency(proficiency) {
		return nil, ErrInvalidProficiency
	}

	skill, err := s.repo.ByID(userID, skillID)
	if err != nil {
		return nil, err
	}

	skill.Title = title
	skill.Description = strings.TrimSpace(description)
	skill.Proficiency = proficiency
	skill.IsActive = isActive

	err = s.repo.Update(skill)
	if err != nil {
		return nil, err
	}

	return skill, nil
}

// Complete marks the skill and all of its goals completed.
func (s *SkillService) Complete(userID, skillID string) (*model.Skill, error) {
	err := s.repo.MarkCompleted(userID, skillID)
	if err != nil {
		return nil, err
	}

	return s.repo.ByID(userID, skillID)
}

// Delete removes a skill and everything hanging off it. Stored files
// must be purged first, the DB cascade only removes their metadata.
func (s *SkillService) Delete(userID, skillID string) error {
	_, err := s.repo.ByID(userID, skillID)
	if err != nil {
		return err
	}

	goals, err := s.goalRepo.GoalsBySkill(userID, skillID)
	if err != nil {
		return err
	}
	for _, goal := range goals {
		err = s.fileService.DeleteOwnerFiles(model.FileOwnerGoal, goal.ID)
		if err != nil {
			return err
		}
	}

	entries, err := s.progressRepo.EntriesBySkill(userID, skillID)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		err = s.fileService.DeleteOwnerFiles(model.FileOwnerProgress, entry.ID)
		if err != nil {
			return err
		}
	}

	notes, err := s.noteRepo.NotesBySkill(userID, skillID)
	if err != nil {
		return err
	}
	for _, note := range notes {
		err = s.fileService.DeleteOwnerFiles(model.FileOwnerNote, note.ID)
		if err != nil {
			return err
		}
	}

	return s.repo.Delete(userID, skillID)
}
