package service

import (
	"testing"
	"time"

	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/skilltrackhq/skilltrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalServiceCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	skill := env.skill(t, user.ID)
	today := model.DateOnly(time.Now())

	_, err := env.goals.Create(user.ID, skill.ID, "  ", today, today.AddDate(0, 0, 7), nil)
	assert.ErrorIs(t, err, ErrDescriptionRequired)

	_, err = env.goals.Create(user.ID, skill.ID, "learn generics", today, today.AddDate(0, 0, -1), nil)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	bad := -2
	_, err = env.goals.Create(user.ID, skill.ID, "learn generics", today, today.AddDate(0, 0, 7), &bad)
	assert.ErrorIs(t, err, ErrInvalidDailyHours)

	_, err = env.goals.Create(user.ID, "no-such-skill", "learn generics", today, today.AddDate(0, 0, 7), nil)
	assert.ErrorIs(t, err, repository.ErrSkillNotFound)
}

func TestGoalServiceCompleteFlipsSkillOnLastGoal(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	skill := env.skill(t, user.ID)

	first := env.goal(t, user.ID, skill.ID, 2, 14)
	second := env.goal(t, user.ID, skill.ID, 1, 30)

	skillCompleted, err := env.goals.Complete(user.ID, first.ID)
	require.NoError(t, err)
	assert.False(t, skillCompleted)

	skillCompleted, err = env.goals.Complete(user.ID, second.ID)
	require.NoError(t, err)
	assert.True(t, skillCompleted)

	gotSkill, err := env.skills.Skill(user.ID, skill.ID)
	require.NoError(t, err)
	assert.True(t, gotSkill.IsCompleted)
	assert.False(t, gotSkill.IsActive)
}

func TestGoalServiceCompleteTwiceFails(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	skill := env.skill(t, user.ID)
	goal := env.goal(t, user.ID, skill.ID, 2, 14)

	_, err := env.goals.Complete(user.ID, goal.ID)
	require.NoError(t, err)

	_, err = env.goals.Complete(user.ID, goal.ID)
	assert.ErrorIs(t, err, ErrGoalAlreadyCompleted)
}

func TestGoalServiceProgressDerivation(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	skill := env.skill(t, user.ID)
	goal := env.goal(t, user.ID, skill.ID, 2, 10)

	today := model.DateOnly(time.Now())

	progress, err := env.goals.Progress(user.ID, goal.ID, today.AddDate(0, 0, 5))
	require.NoError(t, err)
	assert.Equal(t, 10, progress.TotalDays)
	assert.Equal(t, 20, progress.TotalHoursRequired)
	assert.Equal(t, 5, progress.DaysCompleted)
	assert.Equal(t, 50, progress.ProgressPercentage)

	// Past the target date the gauge caps at 100
	progress, err = env.goals.Progress(user.ID, goal.ID, today.AddDate(0, 0, 25))
	require.NoError(t, err)
	assert.Equal(t, 100, progress.ProgressPercentage)
}

func TestGoalServiceAttachRoadmapReplacesPrevious(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	skill := env.skill(t, user.ID)
	goal := env.goal(t, user.ID, skill.ID, 2, 14)

	file, header := pdfUpload(t, "roadmap-v1.pdf")
	first, err := env.goals.AttachRoadmap(user.ID, goal.ID, file, header)
	require.NoError(t, err)

	file, header = pdfUpload(t, "roadmap-v2.pdf")
	second, err := env.goals.AttachRoadmap(user.ID, goal.ID, file, header)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	current, err := env.goals.Roadmap(user.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, "roadmap-v2.pdf", current.OriginalName)

	// Only the replacement blob remains
	assert.Equal(t, 1, env.storage.Len())
}

func TestGoalServiceDeleteRemovesFiles(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	skill := env.skill(t, user.ID)
	goal := env.goal(t, user.ID, skill.ID, 2, 14)

	file, header := pdfUpload(t, "roadmap.pdf")
	_, err := env.goals.AttachRoadmap(user.ID, goal.ID, file, header)
	require.NoError(t, err)
	require.Equal(t, 1, env.storage.Len())

	require.NoError(t, env.goals.Delete(user.ID, goal.ID))
	assert.Equal(t, 0, env.storage.Len())

	_, err = env.goals.Goal(user.ID, goal.ID)
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)
}
