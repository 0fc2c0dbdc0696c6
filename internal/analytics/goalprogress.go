package analytics

import (
	"time"

	"github.com/skilltrackhq/skilltrack/internal/model"
)

// GoalProgress holds the values derived from a goal's date range and
// daily-hour plan. Nothing here is stored; it is recomputed on every
// read so edits to dates or rates are reflected immediately.
type GoalProgress struct {
	TotalDays          int `json:"total_days"`
	TotalHoursRequired int `json:"total_hours_required"`
	DaysCompleted      int `json:"days_completed"`
	ProgressPercentage int `json:"progress_percentage"`
}

// ComputeGoalProgress derives elapsed/required days and the capped
// percentage for a goal as of the given day. A zero-duration goal
// (target on or before start) reports 0%.
func ComputeGoalProgress(goal *model.Goal, today time.Time) GoalProgress {
	start := model.DateOnly(goal.StartDate)
	target := model.DateOnly(goal.TargetDate)
	day := model.DateOnly(today)

	totalDays := daysBetween(start, target)
	daysCompleted := daysBetween(start, day)

	p := GoalProgress{
		TotalDays:          totalDays,
		TotalHoursRequired: totalDays * goal.DailyRate(),
		DaysCompleted:      daysCompleted,
	}

	if totalDays > 0 {
		pct := daysCompleted * 100 / totalDays
		if pct > 100 {
			pct = 100
		}
		p.ProgressPercentage = pct
	}

	return p
}

// daysBetween is the whole-day difference b-a, floored at zero.
func daysBetween(a, b time.Time) int {
	days := int(b.Sub(a).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
