package analytics

import (
	"math"
	"time"

	"github.com/skilltrackhq/skilltrack/internal/model"
)

// Aggregations over a user's progress history. All functions take the
// full record set and an explicit reference day; empty inputs yield
// zero values, never errors.

// TotalHours sums actual study time over all entries.
func TotalHours(entries []*model.ProgressEntry) int {
	total := 0
	for _, e := range entries {
		total += e.ActualTime
	}
	return total
}

// HoursSince sums actual study time over entries whose date lies in
// [from, today], inclusive.
func HoursSince(entries []*model.ProgressEntry, from, today time.Time) int {
	from = model.DateOnly(from)
	today = model.DateOnly(today)

	total := 0
	for _, e := range entries {
		day := model.DateOnly(e.EntryDate)
		if !day.Before(from) && !day.After(today) {
			total += e.ActualTime
		}
	}
	return total
}

// HoursToday sums actual study time logged on the reference day.
func HoursToday(entries []*model.ProgressEntry, today time.Time) int {
	return HoursSince(entries, today, today)
}

// WeeklyHours covers the trailing 7 calendar days ending today.
func WeeklyHours(entries []*model.ProgressEntry, today time.Time) int {
	return HoursSince(entries, today.AddDate(0, 0, -7), today)
}

// MonthlyHours covers the trailing 30 calendar days ending today.
func MonthlyHours(entries []*model.ProgressEntry, today time.Time) int {
	return HoursSince(entries, today.AddDate(0, 0, -30), today)
}

// Streak counts consecutive calendar days ending today with at least
// one entry. The scan stops at the first day without an entry, so an
// empty today means a streak of zero.
func Streak(entries []*model.ProgressEntry, today time.Time) int {
	logged := make(map[time.Time]bool, len(entries))
	for _, e := range entries {
		logged[model.DateOnly(e.EntryDate)] = true
	}

	streak := 0
	day := model.DateOnly(today)
	for logged[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// GoalCompletionPercent is completed/total goals as a truncated
// integer percentage, 0 when the user has no goals.
func GoalCompletionPercent(goals []*model.Goal) int {
	if len(goals) == 0 {
		return 0
	}
	completed := 0
	for _, g := range goals {
		if g.IsCompleted {
			completed++
		}
	}
	return completed * 100 / len(goals)
}

// ProductivityScore is the heuristic composite
// streak*2 + weeklyHours*1.5 + completionPct*1.2, rounded to two
// decimals. The weights carry no normalization; treat the score as a
// relative signal only.
func ProductivityScore(streak, weeklyHours, completionPct int) float64 {
	score := float64(streak)*2 + float64(weeklyHours)*1.5 + float64(completionPct)*1.2
	return math.Round(score*100) / 100
}

// Consistency is the share of a fixed 30-day window with a logged
// entry, as a percentage rounded to one decimal. The denominator stays
// 30 regardless of how old the skill is, so values above 100 are
// possible when more than 30 days carry entries; callers display the
// raw value.
func Consistency(daysLogged int) float64 {
	pct := float64(daysLogged) / 30 * 100
	return math.Round(pct*10) / 10
}

// ActiveDays counts distinct calendar days with at least one entry.
func ActiveDays(entries []*model.ProgressEntry) int {
	days := make(map[time.Time]bool, len(entries))
	for _, e := range entries {
		days[model.DateOnly(e.EntryDate)] = true
	}
	return len(days)
}

// AverageDailyHours is total hours divided by active days, rounded to
// one decimal, 0 when nothing is logged.
func AverageDailyHours(entries []*model.ProgressEntry) float64 {
	days := ActiveDays(entries)
	if days == 0 {
		return 0
	}
	avg := float64(TotalHours(entries)) / float64(days)
	return math.Round(avg*10) / 10
}
