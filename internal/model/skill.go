package model

import (
	"time"
)

const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
)

type Skill struct {
	ID            string     `db:"id" json:"id"`
	UserID        string     `db:"user_id" json:"user_id"`
	Title         string     `db:"title" json:"title"`
	Description   string     `db:"description" json:"description"`
	Proficiency   string     `db:"proficiency" json:"proficiency"`
	StartDate     time.Time  `db:"start_date" json:"start_date"`
	LastPracticed *time.Time `db:"last_practiced" json:"last_practiced,omitempty"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	IsCompleted   bool       `db:"is_completed" json:"is_completed"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

func ValidProficiency(level string) bool {
	switch level {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced:
		return true
	}
	return false
}

// SkillStats holds per-user skill counts for the skill list page.
type SkillStats struct {
	Total        int `db:"total" json:"total"`
	Active       int `db:"active" json:"active"`
	Inactive     int `db:"inactive" json:"inactive"`
	Completed    int `db:"completed" json:"completed"`
	Beginner     int `db:"beginner" json:"beginner"`
	Intermediate int `db:"intermediate" json:"intermediate"`
	Advanced     int `db:"advanced" json:"advanced"`
}
