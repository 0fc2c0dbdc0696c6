package service

import (
	"testing"

	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileServiceRegistrationDefaults(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)

	profile, err := env.profiles.ByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleOther, profile.Role)
	assert.Equal(t, model.ExperienceBeginner, profile.ExperienceLevel)
}

func TestProfileServiceUpdate(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)

	profile, err := env.profiles.Update(user.ID, "Tracker Two", model.RoleStudent, model.ExperienceIntermediate, "self taught")
	require.NoError(t, err)
	assert.Equal(t, "Tracker Two", profile.Name)
	assert.Equal(t, model.RoleStudent, profile.Role)
	assert.Equal(t, model.ExperienceIntermediate, profile.ExperienceLevel)
	assert.Equal(t, "self taught", profile.Education)
}

func TestProfileServiceUpdateKeepsEnumsWhenOmitted(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)

	_, err := env.profiles.Update(user.ID, "Tracker", model.RoleStudent, model.ExperienceExpert, "")
	require.NoError(t, err)

	profile, err := env.profiles.Update(user.ID, "Renamed", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", profile.Name)
	assert.Equal(t, model.RoleStudent, profile.Role)
	assert.Equal(t, model.ExperienceExpert, profile.ExperienceLevel)
}

func TestProfileServiceUpdateValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)

	_, err := env.profiles.Update(user.ID, "Tracker", "astronaut", "", "")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = env.profiles.Update(user.ID, "Tracker", "", "galactic", "")
	assert.ErrorIs(t, err, ErrInvalidExperience)

	_, err = env.profiles.Update(user.ID, "", "", "", "")
	assert.ErrorIs(t, err, ErrValidation)
}
