package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/skilltrackhq/skilltrack/internal/model"
)

var (
	ErrProgressNotFound  = errors.New("progress entry not found")
	ErrDuplicateProgress = errors.New("progress already logged for this day")
)

type ProgressRepository interface {
	Create(entry *model.ProgressEntry) error
	ByID(userID, entryID string) (*model.ProgressEntry, error)
	Entries(userID string) ([]*model.ProgressEntry, error)
	EntriesBySkill(userID, skillID string) ([]*model.ProgressEntry, error)
	EntriesSince(userID string, from time.Time) ([]*model.ProgressEntry, error)
	Recent(userID string, limit int) ([]*model.ProgressEntry, error)
	ExistsForDay(userID, skillID string, day time.Time) (bool, error)
	Update(entry *model.ProgressEntry) error
	Delete(userID, entryID string) error
}

type progressRepository struct {
	db *sqlx.DB
}

func NewProgressRepository(db *sqlx.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(entry *model.ProgressEntry) error {
	query := `INSERT INTO progress_entries (id, user_id, skill_id, entry_date, planned_time, actual_time, extra_time,
	            project_done, project_update, certification_done, topics_done, new_topic_done, topic_notes,
	            feedback, confidence_level, self_rating, is_completed, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.db.Exec(query,
		entry.ID,
		entry.UserID,
		entry.SkillID,
		entry.EntryDate,
		entry.PlannedTime,
		entry.ActualTime,
		entry.ExtraTime,
		entry.ProjectDone,
		entry.ProjectUpdate,
		entry.CertificationDone,
		entry.TopicsDone,
		entry.NewTopicDone,
		entry.TopicNotes,
		entry.Feedback,
		entry.ConfidenceLevel,
		entry.SelfRating,
		entry.IsCompleted,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	if err != nil {
		// The unique index on (user_id, skill_id, entry_date) closes the
		// check-then-insert race under concurrent submissions.
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateProgress
		}
		return err
	}

	return nil
}

func (r *progressRepository) ByID(userID, entryID string) (*model.ProgressEntry, error) {
	entry := &model.ProgressEntry{}
	query := `SELECT * FROM progress_entries WHERE id = $1 AND user_id = $2`

	err := r.db.Get(entry, query, entryID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrProgressNotFound
	}

	return entry, err
}

func (r *progressRepository) Entries(userID string) ([]*model.ProgressEntry, error) {
	var entries []*model.ProgressEntry
	query := `SELECT * FROM progress_entries WHERE user_id = $1 ORDER BY entry_date ASC`

	err := r.db.Select(&entries, query, userID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *progressRepository) EntriesBySkill(userID, skillID string) ([]*model.ProgressEntry, error) {
	var entries []*model.ProgressEntry
	query := `SELECT * FROM progress_entries WHERE user_id = $1 AND skill_id = $2 ORDER BY entry_date ASC`

	err := r.db.Select(&entries, query, userID, skillID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *progressRepository) EntriesSince(userID string, from time.Time) ([]*model.ProgressEntry, error) {
	var entries []*model.ProgressEntry
	query := `SELECT * FROM progress_entries WHERE user_id = $1 AND entry_date >= $2 ORDER BY entry_date ASC`

	err := r.db.Select(&entries, query, userID, from)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *progressRepository) Recent(userID string, limit int) ([]*model.ProgressEntry, error) {
	var entries []*model.ProgressEntry
	query := `SELECT * FROM progress_entries WHERE user_id = $1 ORDER BY entry_date DESC, created_at DESC LIMIT $2`

	err := r.db.Select(&entries, query, userID, limit)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *progressRepository) ExistsForDay(userID, skillID string, day time.Time) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM progress_entries WHERE user_id = $1 AND skill_id = $2 AND entry_date = $3`

	err := r.db.Get(&count, query, userID, skillID, day)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *progressRepository) Update(entry *model.ProgressEntry) error {
	query := `UPDATE progress_entries
	          SET actual_time = $1, extra_time = $2, project_done = $3, project_update = $4, certification_done = $5,
	              topics_done = $6, new_topic_done = $7, topic_notes = $8, feedback = $9, confidence_level = $10,
	              self_rating = $11, is_completed = $12, updated_at = $13
	          WHERE id = $14 AND user_id = $15`

	result, err := r.db.Exec(query,
		entry.ActualTime,
		entry.ExtraTime,
		entry.ProjectDone,
		entry.ProjectUpdate,
		entry.CertificationDone,
		entry.TopicsDone,
		entry.NewTopicDone,
		entry.TopicNotes,
		entry.Feedback,
		entry.ConfidenceLevel,
		entry.SelfRating,
		entry.IsCompleted,
		time.Now(),
		entry.ID,
		entry.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrProgressNotFound
	}

	return nil
}

func (r *progressRepository) Delete(userID, entryID string) error {
	query := `DELETE FROM progress_entries WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, entryID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrProgressNotFound
	}

	return nil
}
