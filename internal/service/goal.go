package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skilltrackhq/skilltrack/internal/analytics"
	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/skilltrackhq/skilltrack/internal/repository"
	"github.com/skilltrackhq/skilltrack/internal/validation"
)

var (
	ErrInvalidDateRange     = errors.New("target date must not be before start date")
	ErrInvalidDailyHours    = errors.New("daily study hours must be positive")
	ErrDescriptionRequired  = errors.New("description is required")
	ErrGoalAlreadyCompleted = errors.New("goal already completed")
)

type GoalService struct {
	repo        repository.GoalRepository
	skillRepo   repository.SkillRepository
	fileService *FileService
}

func NewGoalService(
	repo repository.GoalRepository,
	skillRepo repository.SkillRepository,
	fileService *FileService,
) *GoalService {
	return &GoalService{
		repo:        repo,
		skillRepo:   skillRepo,
		fileService: fileService,
	}
}

func (s *GoalService) Create(userID, skillID, description string, startDate, targetDate time.Time, dailyStudyHours *int) (*model.Goal, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	// Ownership check doubles as existence check
	_, err := s.skillRepo.ByID(userID, skillID)
	if err != nil {
		return nil, err
	}

	if startDate.IsZero() {
		startDate = model.DateOnly(time.Now())
	}
	startDate = model.DateOnly(startDate)
	targetDate = model.DateOnly(targetDate)

	if targetDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	if dailyStudyHours != nil && *dailyStudyHours <= 0 {
		return nil, ErrInvalidDailyHours
	}

	now := time.Now()
	goal := &model.Goal{
		ID:              uuid.New().String(),
		UserID:          userID,
		SkillID:         skillID,
		Description:     description,
		StartDate:       startDate,
		TargetDate:      targetDate,
		DailyStudyHours: dailyStudyHours,
		IsCompleted:     false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) Goal(userID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(userID, goalID)
}

func (s *GoalService) Goals(userID, skillID string) ([]*model.Goal, error) {
	if skillID != "" {
		return s.repo.GoalsBySkill(userID, skillID)
	}
	return s.repo.Goals(userID)
}

func (s *GoalService) Update(userID, goalID, description string, targetDate time.Time, dailyStudyHours *int) (*model.Goal, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	targetDate = model.DateOnly(targetDate)
	if targetDate.Before(model.DateOnly(goal.StartDate)) {
		return nil, ErrInvalidDateRange
	}

	if dailyStudyHours != nil && *dailyStudyHours <= 0 {
		return nil, ErrInvalidDailyHours
	}

	goal.Description = description
	goal.TargetDate = targetDate
	goal.DailyStudyHours = dailyStudyHours

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// Complete finishes a goal. When it was the skill's last open goal the
// skill is completed in the same transaction; the returned flag tells
// the caller whether that happened.
func (s *GoalService) Complete(userID, goalID string) (skillCompleted bool, err error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return false, err
	}

	if goal.IsCompleted {
		return false, ErrGoalAlreadyCompleted
	}

	return s.repo.Complete(userID, goalID)
}

// Progress derives the goal's plan-based progress as of today.
func (s *GoalService) Progress(userID, goalID string, today time.Time) (analytics.GoalProgress, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return analytics.GoalProgress{}, err
	}

	return analytics.ComputeGoalProgress(goal, today), nil
}

// AttachRoadmap uploads a roadmap document (PDF or image) for the goal,
// replacing any previous one.
func (s *GoalService) AttachRoadmap(userID, goalID string, file multipart.File, header *multipart.FileHeader) (*model.File, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateFile(header, validation.DocumentConstraints, validation.ImageConstraints)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}

	existing, err := s.fileService.FileByType(model.FileOwnerGoal, goal.ID, model.FileTypeRoadmap)
	if err == nil {
		delErr := s.fileService.Delete(existing.ID)
		if delErr != nil {
			return nil, delErr
		}
	} else if !errors.Is(err, repository.ErrFileNotFound) {
		return nil, err
	}

	return s.fileService.Upload(userID, model.FileOwnerGoal, goal.ID, model.FileTypeRoadmap, file, header)
}

func (s *GoalService) Roadmap(userID, goalID string) (*model.File, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	return s.fileService.FileByType(model.FileOwnerGoal, goal.ID, model.FileTypeRoadmap)
}

func (s *GoalService) Delete(userID, goalID string) error {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return err
	}

	err = s.fileService.DeleteOwnerFiles(model.FileOwnerGoal, goal.ID)
	if err != nil {
		return err
	}

	return s.repo.Delete(userID, goalID)
}
