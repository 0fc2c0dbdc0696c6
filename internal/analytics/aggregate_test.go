package analytics

import (
	"testing"
	"time"

	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/stretchr/testify/assert"
)

var testToday = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func entryOn(daysAgo, hours int) *model.ProgressEntry {
	return &model.ProgressEntry{
		SkillID:    "skill-1",
		EntryDate:  testToday.AddDate(0, 0, -daysAgo),
		ActualTime: hours,
	}
}

func TestAggregatesEmptyHistory(t *testing.T) {
	var entries []*model.ProgressEntry
	var goals []*model.Goal

	assert.Equal(t, 0, TotalHours(entries))
	assert.Equal(t, 0, HoursToday(entries, testToday))
	assert.Equal(t, 0, WeeklyHours(entries, testToday))
	assert.Equal(t, 0, MonthlyHours(entries, testToday))
	assert.Equal(t, 0, Streak(entries, testToday))
	assert.Equal(t, 0, GoalCompletionPercent(goals))
	assert.Equal(t, 0.0, ProductivityScore(0, 0, 0))
	assert.Equal(t, 0, ActiveDays(entries))
	assert.Equal(t, 0.0, AverageDailyHours(entries))
}

func TestWeeklyTotalAndDailyAverage(t *testing.T) {
	// Three logged days inside the trailing week, four silent days.
	entries := []*model.ProgressEntry{
		entryOn(6, 2),
		entryOn(5, 3),
		entryOn(4, 4),
	}

	assert.Equal(t, 9, WeeklyHours(entries, testToday))
	assert.Equal(t, 3, ActiveDays(entries))
	assert.Equal(t, 3.0, AverageDailyHours(entries))
}

func TestHoursSinceWindowIsInclusive(t *testing.T) {
	entries := []*model.ProgressEntry{
		entryOn(0, 1),
		entryOn(7, 2),
		entryOn(8, 4),
	}

	// Both window edges count, the day outside does not.
	assert.Equal(t, 3, HoursSince(entries, testToday.AddDate(0, 0, -7), testToday))
	assert.Equal(t, 1, HoursToday(entries, testToday))
}

func TestStreakStopsAtFirstGap(t *testing.T) {
	entries := []*model.ProgressEntry{
		entryOn(0, 1),
		entryOn(1, 1),
		entryOn(2, 1),
		// day 3 missing
		entryOn(4, 1),
	}

	assert.Equal(t, 3, Streak(entries, testToday))
}

func TestStreakZeroWithoutTodayEntry(t *testing.T) {
	entries := []*model.ProgressEntry{
		entryOn(1, 2),
		entryOn(2, 2),
	}

	assert.Equal(t, 0, Streak(entries, testToday))
}

func TestStreakCountsOneEntryPerDay(t *testing.T) {
	// Two skills logged on the same day still count as one streak day.
	a := entryOn(0, 1)
	b := entryOn(0, 2)
	b.SkillID = "skill-2"

	assert.Equal(t, 1, Streak([]*model.ProgressEntry{a, b}, testToday))
}

func TestGoalCompletionPercent(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"no goals", 0, 0, 0},
		{"none complete", 0, 4, 0},
		{"half complete", 2, 4, 50},
		{"truncates", 1, 3, 33},
		{"all complete", 5, 5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goals := make([]*model.Goal, 0, tt.total)
			for i := 0; i < tt.total; i++ {
				goals = append(goals, &model.Goal{IsCompleted: i < tt.completed})
			}
			got := GoalCompletionPercent(goals)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestProductivityScore(t *testing.T) {
	// streak*2 + weekly*1.5 + completion*1.2
	assert.Equal(t, 10.0, ProductivityScore(5, 0, 0))
	assert.Equal(t, 15.0, ProductivityScore(0, 10, 0))
	assert.Equal(t, 60.0, ProductivityScore(0, 0, 50))
	assert.Equal(t, 125.4, ProductivityScore(3, 12, 84))
}

func TestConsistencyFixedWindow(t *testing.T) {
	assert.Equal(t, 0.0, Consistency(0))
	assert.Equal(t, 50.0, Consistency(15))
	assert.Equal(t, 100.0, Consistency(30))
	// The denominator stays 30, so a long history can exceed 100.
	assert.Equal(t, 103.3, Consistency(31))
}
