package service

import (
	"testing"
	"time"

	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardOverview(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	goSkill := env.skill(t, user.ID)
	rustSkill, err := env.skills.Create(user.ID, "Rust", "", model.ProficiencyBeginner, time.Time{})
	require.NoError(t, err)

	env.goal(t, user.ID, goSkill.ID, 2, 10)

	now := time.Now()
	_, _, err = env.progress.Log(user.ID, goSkill.ID, LogInput{ActualTime: 2}, now.AddDate(0, 0, -1))
	require.NoError(t, err)
	_, _, err = env.progress.Log(user.ID, goSkill.ID, LogInput{ActualTime: 3}, now)
	require.NoError(t, err)
	_, _, err = env.progress.Log(user.ID, rustSkill.ID, LogInput{ActualTime: 1}, now)
	require.NoError(t, err)

	overview, err := env.dashboard.Overview(user.ID, now)
	require.NoError(t, err)

	assert.Equal(t, 6, overview.TotalHours)
	assert.Equal(t, 4, overview.TodayHours)
	assert.Equal(t, 6, overview.WeeklyHours)
	assert.Equal(t, 6, overview.MonthlyHours)
	assert.Equal(t, 2, overview.Streak)
	assert.Equal(t, 2, overview.ActiveDays)
	assert.Equal(t, 3.0, overview.AverageDailyHours)
	assert.Equal(t, 6.7, overview.Consistency)

	assert.Equal(t, 1, overview.Goals.Total)
	assert.Equal(t, 1, overview.Goals.Active)
	assert.Equal(t, 0, overview.Goals.Completed)

	require.Len(t, overview.Performance, 2)
	assert.Equal(t, goSkill.ID, overview.Performance[0].SkillID)
	assert.Equal(t, 5, overview.Performance[0].TotalHours)
	assert.Equal(t, 2, overview.Performance[0].DaysLogged)
	assert.Equal(t, rustSkill.ID, overview.Performance[1].SkillID)

	require.Len(t, overview.GoalProgress, 1)
	assert.Equal(t, goSkill.ID, overview.GoalProgress[0].SkillID)

	assert.Len(t, overview.RecentEntries, 3)
	assert.Empty(t, overview.RecentNotes)
}

func TestDashboardOverviewExcludesCompletedGoals(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	skill := env.skill(t, user.ID)
	goal := env.goal(t, user.ID, skill.ID, 2, 10)

	_, err := env.goals.Complete(user.ID, goal.ID)
	require.NoError(t, err)

	overview, err := env.dashboard.Overview(user.ID, time.Now())
	require.NoError(t, err)

	assert.Empty(t, overview.GoalProgress)
	assert.Equal(t, 1, overview.Goals.Completed)
	assert.Equal(t, 100, overview.Goals.CompletionPercent)
}

func TestDashboardCharts(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	goSkill := env.skill(t, user.ID)
	rustSkill, err := env.skills.Create(user.ID, "Rust", "", model.ProficiencyBeginner, time.Time{})
	require.NoError(t, err)

	now := time.Now()
	_, _, err = env.progress.Log(user.ID, goSkill.ID, LogInput{ActualTime: 3}, now)
	require.NoError(t, err)
	_, _, err = env.progress.Log(user.ID, rustSkill.ID, LogInput{ActualTime: 1}, now)
	require.NoError(t, err)

	charts, err := env.dashboard.Charts(user.ID, now)
	require.NoError(t, err)

	require.Len(t, charts.Weekly, 7)
	assert.Equal(t, 4.0, charts.Weekly[6].Value)

	require.Len(t, charts.Daily30, 30)
	assert.Equal(t, 4.0, charts.Daily30[29].Value)

	require.Len(t, charts.MovingAverage, 30)
	assert.Nil(t, charts.MovingAverage[0])
	assert.Nil(t, charts.MovingAverage[5])
	require.NotNil(t, charts.MovingAverage[29])

	require.Len(t, charts.Cumulative, 30)
	assert.Equal(t, 4.0, charts.Cumulative[29].Value)

	assert.Len(t, charts.Monthly, 6)
	require.Len(t, charts.Heatmap, 4)
	for _, week := range charts.Heatmap {
		assert.Len(t, week.Days, 7)
	}
	assert.Len(t, charts.WeekdayLabels, 7)

	require.Len(t, charts.SkillTotals, 2)
	assert.Equal(t, goSkill.ID, charts.SkillTotals[0].SkillID)
	assert.Equal(t, 3.0, charts.SkillTotals[0].Hours)
}

func TestDashboardSkillAnalytics(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	skill := env.skill(t, user.ID)
	env.goal(t, user.ID, skill.ID, 2, 10)

	now := time.Now()
	_, _, err := env.progress.Log(user.ID, skill.ID, LogInput{ActualTime: 2}, now.AddDate(0, 0, -1))
	require.NoError(t, err)
	_, _, err = env.progress.Log(user.ID, skill.ID, LogInput{ActualTime: 3}, now)
	require.NoError(t, err)

	result, err := env.dashboard.SkillAnalytics(user.ID, skill.ID, now)
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalHours)
	assert.Equal(t, 2, result.DaysLogged)
	assert.Equal(t, 2, result.Streak)
	// 5 of 20 planned hours
	assert.Equal(t, 25, result.GaugePercent)
	assert.Len(t, result.Daily30, 30)
}

func TestDashboardSkillAnalyticsWithoutPlan(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	skill := env.skill(t, user.ID)

	_, _, err := env.progress.Log(user.ID, skill.ID, LogInput{ActualTime: 4}, time.Now())
	require.NoError(t, err)

	result, err := env.dashboard.SkillAnalytics(user.ID, skill.ID, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalHours)
	assert.Equal(t, 0, result.GaugePercent)
}
