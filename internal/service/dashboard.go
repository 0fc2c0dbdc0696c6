package service

import (
	"sort"
	"time"

	"github.com/skilltrackhq/skilltrack/internal/analytics"
	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/skilltrackhq/skilltrack/internal/repository"
)

const recentLimit = 5

// Overview is the dashboard landing payload.
type Overview struct {
	Skills            *model.SkillStats      `json:"skills"`
	Goals             GoalStats              `json:"goals"`
	TotalHours        int                    `json:"total_hours"`
	TodayHours        int                    `json:"today_hours"`
	WeeklyHours       int                    `json:"weekly_hours"`
	MonthlyHours      int                    `json:"monthly_hours"`
	Streak            int                    `json:"streak"`
	ProductivityScore float64                `json:"productivity_score"`
	Consistency       float64                `json:"consistency"`
	ActiveDays        int                    `json:"active_days"`
	AverageDailyHours float64                `json:"average_daily_hours"`
	Performance       []SkillPerformance     `json:"performance"`
	GoalProgress      []GoalProgressRow      `json:"goal_progress"`
	RecentEntries     []*model.ProgressEntry `json:"recent_entries"`
	RecentNotes       []*model.Note          `json:"recent_notes"`
}

type GoalStats struct {
	Total             int `json:"total"`
	Active            int `json:"active"`
	Completed         int `json:"completed"`
	CompletionPercent int `json:"completion_percent"`
}

// SkillPerformance is one row of the per-skill performance table.
type SkillPerformance struct {
	SkillID      string  `json:"skill_id"`
	Title        string  `json:"title"`
	TotalHours   int     `json:"total_hours"`
	AverageHours float64 `json:"average_hours"`
	DaysLogged   int     `json:"days_logged"`
	Consistency  float64 `json:"consistency"`
}

type GoalProgressRow struct {
	GoalID      string                 `json:"goal_id"`
	SkillID     string                 `json:"skill_id"`
	Description string                 `json:"description"`
	Progress    analytics.GoalProgress `json:"progress"`
}

// Charts is the chart-data payload for the external renderer.
type Charts struct {
	Weekly        []analytics.Point       `json:"weekly"`
	Daily30       []analytics.Point       `json:"daily_30"`
	MovingAverage []*float64              `json:"moving_average"`
	Cumulative    []analytics.Point       `json:"cumulative"`
	Monthly       []analytics.Point       `json:"monthly"`
	Heatmap       []analytics.HeatmapWeek `json:"heatmap"`
	WeekdayLabels []string                `json:"weekday_labels"`
	SkillTotals   []analytics.SkillTotal  `json:"skill_totals"`
	GoalPie       GoalStats               `json:"goal_pie"`
}

// SkillAnalytics is the per-skill drill-down payload.
type SkillAnalytics struct {
	Skill        *model.Skill      `json:"skill"`
	TotalHours   int               `json:"total_hours"`
	DaysLogged   int               `json:"days_logged"`
	AverageHours float64           `json:"average_hours"`
	Streak       int               `json:"streak"`
	Daily30      []analytics.Point `json:"daily_30"`
	Cumulative   []analytics.Point `json:"cumulative"`
	GaugePercent int               `json:"gauge_percent"`
}

type DashboardService struct {
	skillRepo    repository.SkillRepository
	goalRepo     repository.GoalRepository
	progressRepo repository.ProgressRepository
	noteService  *NoteService
}

func NewDashboardService(
	skillRepo repository.SkillRepository,
	goalRepo repository.GoalRepository,
	progressRepo repository.ProgressRepository,
	noteService *NoteService,
) *DashboardService {
	return &DashboardService{
		skillRepo:    skillRepo,
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
		noteService:  noteService,
	}
}

func (s *DashboardService) Overview(userID string, today time.Time) (*Overview, error) {
	skillStats, err := s.skillRepo.Stats(userID)
	if err != nil {
		return nil, err
	}

	skills, err := s.skillRepo.Skills(userID)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.Goals(userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.progressRepo.Entries(userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.progressRepo.Recent(userID, recentLimit)
	if err != nil {
		return nil, err
	}

	recentNotes, err := s.noteService.Recent(userID, recentLimit)
	if err != nil {
		return nil, err
	}

	goalStats := goalStats(goals)
	streak := analytics.Streak(entries, today)
	weekly := analytics.WeeklyHours(entries, today)
	activeDays := analytics.ActiveDays(entries)

	overview := &Overview{
		Skills:            skillStats,
		Goals:             goalStats,
		TotalHours:        analytics.TotalHours(entries),
		TodayHours:        analytics.HoursToday(entries, today),
		WeeklyHours:       weekly,
		MonthlyHours:      analytics.MonthlyHours(entries, today),
		Streak:            streak,
		ProductivityScore: analytics.ProductivityScore(streak, weekly, goalStats.CompletionPercent),
		Consistency:       analytics.Consistency(daysLoggedInWindow(entries, today, 30)),
		ActiveDays:        activeDays,
		AverageDailyHours: analytics.AverageDailyHours(entries),
		Performance:       performance(skills, entries, today),
		GoalProgress:      goalProgressRows(goals, today),
		RecentEntries:     recent,
		RecentNotes:       recentNotes,
	}

	return overview, nil
}

func (s *DashboardService) Charts(userID string, today time.Time) (*Charts, error) {
	entries, err := s.progressRepo.Entries(userID)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.Goals(userID)
	if err != nil {
		return nil, err
	}

	skills, err := s.skillRepo.Skills(userID)
	if err != nil {
		return nil, err
	}

	titles := make(map[string]string, len(skills))
	for _, skill := range skills {
		titles[skill.ID] = skill.Title
	}

	daily30 := analytics.DailySeries(entries, 30, today)
	heatmap, weekdayLabels := analytics.Heatmap(entries, today)

	charts := &Charts{
		Weekly:        analytics.DailySeries(entries, 7, today),
		Daily30:       daily30,
		MovingAverage: analytics.MovingAverage(daily30, 7),
		Cumulative:    analytics.CumulativeSeries(daily30),
		Monthly:       analytics.MonthlySeries(entries, 6, today),
		Heatmap:       heatmap,
		WeekdayLabels: weekdayLabels,
		SkillTotals:   analytics.SkillTotals(entries, titles),
		GoalPie:       goalStats(goals),
	}

	return charts, nil
}

// SkillAnalytics assembles the drill-down for one skill. The gauge is
// achieved hours against the sum of the skill's planned daily hours,
// capped at 100.
func (s *DashboardService) SkillAnalytics(userID, skillID string, today time.Time) (*SkillAnalytics, error) {
	skill, err := s.skillRepo.ByID(userID, skillID)
	if err != nil {
		return nil, err
	}

	entries, err := s.progressRepo.EntriesBySkill(userID, skillID)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.GoalsBySkill(userID, skillID)
	if err != nil {
		return nil, err
	}

	planned := 0
	for _, goal := range goals {
		progress := analytics.ComputeGoalProgress(goal, today)
		planned += progress.TotalHoursRequired
	}

	total := analytics.TotalHours(entries)
	gauge := 0
	if planned > 0 {
		gauge = total * 100 / planned
		if gauge > 100 {
			gauge = 100
		}
	}

	daily30 := analytics.DailySeries(entries, 30, today)

	result := &SkillAnalytics{
		Skill:        skill,
		TotalHours:   total,
		DaysLogged:   analytics.ActiveDays(entries),
		AverageHours: analytics.AverageDailyHours(entries),
		Streak:       analytics.Streak(entries, today),
		Daily30:      daily30,
		Cumulative:   analytics.CumulativeSeries(daily30),
		GaugePercent: gauge,
	}

	return result, nil
}

func goalStats(goals []*model.Goal) GoalStats {
	stats := GoalStats{Total: len(goals)}
	for _, goal := range goals {
		if goal.IsCompleted {
			stats.Completed++
		} else {
			stats.Active++
		}
	}
	stats.CompletionPercent = analytics.GoalCompletionPercent(goals)
	return stats
}

func goalProgressRows(goals []*model.Goal, today time.Time) []GoalProgressRow {
	rows := make([]GoalProgressRow, 0, len(goals))
	for _, goal := range goals {
		if goal.IsCompleted {
			continue
		}
		rows = append(rows, GoalProgressRow{
			GoalID:      goal.ID,
			SkillID:     goal.SkillID,
			Description: goal.Description,
			Progress:    analytics.ComputeGoalProgress(goal, today),
		})
	}
	return rows
}

func performance(skills []*model.Skill, entries []*model.ProgressEntry, today time.Time) []SkillPerformance {
	bySkill := make(map[string][]*model.ProgressEntry)
	for _, entry := range entries {
		bySkill[entry.SkillID] = append(bySkill[entry.SkillID], entry)
	}

	rows := make([]SkillPerformance, 0, len(skills))
	for _, skill := range skills {
		skillEntries := bySkill[skill.ID]
		rows = append(rows, SkillPerformance{
			SkillID:      skill.ID,
			Title:        skill.Title,
			TotalHours:   analytics.TotalHours(skillEntries),
			AverageHours: analytics.AverageDailyHours(skillEntries),
			DaysLogged:   analytics.ActiveDays(skillEntries),
			Consistency:  analytics.Consistency(daysLoggedInWindow(skillEntries, today, 30)),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalHours != rows[j].TotalHours {
			return rows[i].TotalHours > rows[j].TotalHours
		}
		return rows[i].Title < rows[j].Title
	})

	return rows
}

func daysLoggedInWindow(entries []*model.ProgressEntry, today time.Time, days int) int {
	from := model.DateOnly(today).AddDate(0, 0, -days)
	seen := make(map[time.Time]bool)
	for _, entry := range entries {
		day := model.DateOnly(entry.EntryDate)
		if !day.Before(from) && !day.After(model.DateOnly(today)) {
			seen[day] = true
		}
	}
	return len(seen)
}
