package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/skilltrackhq/skilltrack/internal/repository"
	"github.com/skilltrackhq/skilltrack/internal/validation"
)

var (
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidExperience = errors.New("invalid experience level")
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

func (s *ProfileService) ByUserID(userID string) (*model.Profile, error) {
	return s.profileRepo.ByUserID(userID)
}

func (s *ProfileService) Update(userID, name, role, experienceLevel, education string) (*model.Profile, error) {
	name = strings.TrimSpace(name)

	err := validation.ValidateName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	if role != "" && !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	if experienceLevel != "" && !model.ValidExperienceLevel(experienceLevel) {
		return nil, ErrInvalidExperience
	}

	profile, err := s.profileRepo.ByUserID(userID)
	if err != nil {
		return nil, err
	}

	profile.Name = name
	// Empty enum fields mean "keep current", so a partial update never
	// drops the role or experience level out of their value sets.
	if role != "" {
		profile.Role = role
	}
	if experienceLevel != "" {
		profile.ExperienceLevel = experienceLevel
	}
	profile.Education = strings.TrimSpace(education)

	err = s.profileRepo.Update(profile)
	if err != nil {
		return nil, err
	}

	return profile, nil
}
