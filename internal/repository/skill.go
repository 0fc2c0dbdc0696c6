package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/skilltrackhq/skilltrack/internal/model"
)

var (
	ErrSkillNotFound = errors.New("skill not found")
)

type SkillRepository interface {
	Create(skill *model.Skill) error
	ByID(userID, skillID string) (*model.Skill, error)
	Skills(userID string) ([]*model.Skill, error)
	Stats(userID string) (*model.SkillStats, error)
	Update(skill *model.Skill) error
	SetLastPracticed(userID, skillID string, day time.Time) error
	MarkCompleted(userID, skillID string) error
	Delete(userID, skillID string) error
}

type skillRepository struct {
	db *sqlx.DB
}

func NewSkillRepository(db *sqlx.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(skill *model.Skill) error {
	query := `INSERT INTO skills (id, user_id, title, description, proficiency, start_date, last_practiced, is_active, is_completed, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		skill.ID,
		skill.UserID,
		skill.Title,
		skill.Description,
		skill.Proficiency,
		skill.StartDate,
		skill.LastPracticed,
		skill.IsActive,
		skill.IsCompleted,
		skill.CreatedAt,
		skill.UpdatedAt,
	)

	return err
}

func (r *skillRepository) ByID(userID, skillID string) (*model.Skill, error) {
	skill := &model.Skill{}
	query := `SELECT * FROM skills WHERE id = $1 AND user_id = $2`

	err := r.db.Get(skill, query, skillID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrSkillNotFound
	}

	return skill, err
}

func (r *skillRepository) Skills(userID string) ([]*model.Skill, error) {
	var skills []*model.Skill
	query := `SELECT * FROM skills WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&skills, query, userID)
	if err != nil {
		return nil, err
	}

	return skills, nil
}

func (r *skillRepository) Stats(userID string) (*model.SkillStats, error) {
	stats := &model.SkillStats{}
	query := `SELECT
	            COUNT(*) AS total,
	            COUNT(CASE WHEN is_active THEN 1 END) AS active,
	            COUNT(CASE WHEN NOT is_active THEN 1 END) AS inactive,
	            COUNT(CASE WHEN is_completed THEN 1 END) AS completed,
	            COUNT(CASE WHEN proficiency = 'beginner' THEN 1 END) AS beginner,
	            COUNT(CASE WHEN proficiency = 'intermediate' THEN 1 END) AS intermediate,
	            COUNT(CASE WHEN proficiency = 'advanced' THEN 1 END) AS advanced
	          FROM skills WHERE user_id = $1`

	err := r.db.Get(stats, query, userID)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *skillRepository) Update(skill *model.Skill) error {
	query := `UPDATE skills
	          SET title = $1, description = $2, proficiency = $3, last_practiced = $4, is_active = $5, is_completed = $6, updated_at = $7
	          WHERE id = $8 AND user_id = $9`

	result, err := r.db.Exec(query,
		skill.Title,
		skill.Description,
		skill.Proficiency,
		skill.LastPracticed,
		skill.IsActive,
		skill.IsCompleted,
		time.Now(),
		skill.ID,
		skill.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSkillNotFound
	}

	return nil
}

func (r *skillRepository) SetLastPracticed(userID, skillID string, day time.Time) error {
	query := `UPDATE skills SET last_practiced = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := r.db.Exec(query, day, time.Now(), skillID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSkillNotFound
	}

	return nil
}

// MarkCompleted completes a skill and all of its goals in one
// transaction, mirroring the completion rule in the other direction:
// a completed skill has no open goals.
func (r *skillRepository) MarkCompleted(userID, skillID string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()

	result, err := tx.Exec(`UPDATE skills SET is_completed = TRUE, is_active = FALSE, updated_at = $1 WHERE id = $2 AND user_id = $3`,
		now, skillID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSkillNotFound
	}

	_, err = tx.Exec(`UPDATE goals SET is_completed = TRUE, updated_at = $1 WHERE skill_id = $2 AND user_id = $3 AND NOT is_completed`,
		now, skillID, userID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *skillRepository) Delete(userID, skillID string) error {
	query := `DELETE FROM skills WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, skillID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSkillNotFound
	}

	return nil
}
