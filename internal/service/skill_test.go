package service

import (
	"testing"
	"time"

	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/skilltrackhq/skilltrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillServiceCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)

	_, err := env.skills.Create(user.ID, "  ", "", model.ProficiencyBeginner, time.Time{})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = env.skills.Create(user.ID, "Go", "", "wizard", time.Time{})
	assert.ErrorIs(t, err, ErrInvalidProficiency)
}

func TestSkillServiceCreateDefaultsStartDate(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)

	skill := env.skill(t, user.ID)
	assert.True(t, skill.StartDate.Equal(model.DateOnly(time.Now())))
	assert.True(t, skill.IsActive)
	assert.False(t, skill.IsCompleted)
}

func TestSkillServiceCompleteCascades(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	skill := env.skill(t, user.ID)
	goal := env.goal(t, user.ID, skill.ID, 2, 14)

	got, err := env.skills.Complete(user.ID, skill.ID)
	require.NoError(t, err)
	assert.True(t, got.IsCompleted)
	assert.False(t, got.IsActive)

	gotGoal, err := env.goals.Goal(user.ID, goal.ID)
	require.NoError(t, err)
	assert.True(t, gotGoal.IsCompleted)
}

func TestSkillServiceDeletePurgesEverything(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	skill := env.skill(t, user.ID)
	goal := env.goal(t, user.ID, skill.ID, 2, 14)

	file, header := pdfUpload(t, "roadmap.pdf")
	_, err := env.goals.AttachRoadmap(user.ID, goal.ID, file, header)
	require.NoError(t, err)

	entry, _, err := env.progress.Log(user.ID, skill.ID, LogInput{ActualTime: 2}, time.Now())
	require.NoError(t, err)

	file, header = pdfUpload(t, "certificate.pdf")
	_, err = env.progress.AttachCertificate(user.ID, entry.ID, file, header)
	require.NoError(t, err)

	file, header = pdfUpload(t, "notes.pdf")
	_, err = env.notes.Add(user.ID, skill.ID, "pointers", model.NoteTypeNotes, file, header)
	require.NoError(t, err)

	require.Equal(t, 3, env.storage.Len())

	require.NoError(t, env.skills.Delete(user.ID, skill.ID))

	assert.Equal(t, 0, env.storage.Len())

	_, err = env.skills.Skill(user.ID, skill.ID)
	assert.ErrorIs(t, err, repository.ErrSkillNotFound)

	goals, err := env.goals.Goals(user.ID, "")
	require.NoError(t, err)
	assert.Empty(t, goals)

	entries, err := env.progress.Entries(user.ID, "", 0)
	require.NoError(t, err)
	assert.Empty(t, entries)

	notes, err := env.notes.Notes(user.ID, "")
	require.NoError(t, err)
	assert.Empty(t, notes)
}
