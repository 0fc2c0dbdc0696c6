package model

import (
	"time"
)

// ProgressEntry records one day's study activity against a skill.
// EntryDate is normalized to UTC midnight; at most one entry exists
// per user/skill/day (unique index in the schema).
type ProgressEntry struct {
	ID                string    `db:"id" json:"id"`
	UserID            string    `db:"user_id" json:"user_id"`
	SkillID           string    `db:"skill_id" json:"skill_id"`
	EntryDate         time.Time `db:"entry_date" json:"entry_date"`
	PlannedTime       int       `db:"planned_time" json:"planned_time"`
	ActualTime        int       `db:"actual_time" json:"actual_time"`
	ExtraTime         int       `db:"extra_time" json:"extra_time"`
	ProjectDone       bool      `db:"project_done" json:"project_done"`
	ProjectUpdate     string    `db:"project_update" json:"project_update"`
	CertificationDone bool      `db:"certification_done" json:"certification_done"`
	TopicsDone        string    `db:"topics_done" json:"topics_done"`
	NewTopicDone      bool      `db:"new_topic_done" json:"new_topic_done"`
	TopicNotes        bool      `db:"topic_notes" json:"topic_notes"`
	Feedback          string    `db:"feedback" json:"feedback"`
	ConfidenceLevel   int       `db:"confidence_level" json:"confidence_level"`
	SelfRating        int       `db:"self_rating" json:"self_rating"`
	IsCompleted       bool      `db:"is_completed" json:"is_completed"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// DateOnly truncates t to UTC midnight so calendar-day comparisons
// and the per-day uniqueness index behave regardless of submit time.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
