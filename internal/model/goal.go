package model

import (
	"time"
)

type Goal struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	SkillID         string    `db:"skill_id" json:"skill_id"`
	Description     string    `db:"description" json:"description"`
	StartDate       time.Time `db:"start_date" json:"start_date"`
	TargetDate      time.Time `db:"target_date" json:"target_date"`
	DailyStudyHours *int      `db:"daily_study_hours" json:"daily_study_hours,omitempty"`
	IsCompleted     bool      `db:"is_completed" json:"is_completed"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// DailyRate returns the planned study hours per day, 0 when no plan is set.
func (g *Goal) DailyRate() int {
	if g.DailyStudyHours == nil {
		return 0
	}
	return *g.DailyStudyHours
}
