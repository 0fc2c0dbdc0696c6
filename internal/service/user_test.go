package service

import (
	"testing"

	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/skilltrackhq/skilltrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceDeleteAccountPurgesEverything(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	skill := env.skill(t, user.ID)
	goal := env.goal(t, user.ID, skill.ID, 2, 14)

	file, header := pdfUpload(t, "roadmap.pdf")
	_, err := env.goals.AttachRoadmap(user.ID, goal.ID, file, header)
	require.NoError(t, err)

	file, header = pdfUpload(t, "slices.pdf")
	_, err = env.notes.Add(user.ID, skill.ID, "slices", model.NoteTypeNotes, file, header)
	require.NoError(t, err)

	require.Equal(t, 2, env.storage.Len())

	require.NoError(t, env.users.DeleteAccount(user.ID))

	assert.Equal(t, 0, env.storage.Len())

	_, err = env.auth.Login("tracker@example.com", "a long enough secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	skills, err := env.skills.Skills(user.ID)
	require.NoError(t, err)
	assert.Empty(t, skills)

	files, err := env.files.AllUserFiles(user.ID)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestUserServiceDeleteAccountUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	err := env.users.DeleteAccount("no-such-user")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
