package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/skilltrackhq/skilltrack/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(userID, goalID string) (*model.Goal, error)
	Goals(userID string) ([]*model.Goal, error)
	GoalsBySkill(userID, skillID string) ([]*model.Goal, error)
	NewestIncomplete(userID, skillID string) (*model.Goal, error)
	Update(goal *model.Goal) error
	Complete(userID, goalID string) (skillCompleted bool, err error)
	Delete(userID, goalID string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, user_id, skill_id, description, start_date, target_date, daily_study_hours, is_completed, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserID,
		goal.SkillID,
		goal.Description,
		goal.StartDate,
		goal.TargetDate,
		goal.DailyStudyHours,
		goal.IsCompleted,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

func (r *goalRepository) ByID(userID, goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1 AND user_id = $2`

	err := r.db.Get(goal, query, goalID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) Goals(userID string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&goals, query, userID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) GoalsBySkill(userID, skillID string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE user_id = $1 AND skill_id = $2 ORDER BY created_at DESC`

	err := r.db.Select(&goals, query, userID, skillID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

// NewestIncomplete returns the most recently created open goal for a
// skill. Progress logging copies its daily rate as the planned time.
func (r *goalRepository) NewestIncomplete(userID, skillID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals
	          WHERE user_id = $1 AND skill_id = $2 AND NOT is_completed
	          ORDER BY created_at DESC LIMIT 1`

	err := r.db.Get(goal, query, userID, skillID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) Update(goal *model.Goal) error {
	query := `UPDATE goals
	          SET description = $1, start_date = $2, target_date = $3, daily_study_hours = $4, is_completed = $5, updated_at = $6
	          WHERE id = $7 AND user_id = $8`

	result, err := r.db.Exec(query,
		goal.Description,
		goal.StartDate,
		goal.TargetDate,
		goal.DailyStudyHours,
		goal.IsCompleted,
		time.Now(),
		goal.ID,
		goal.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// Complete marks a goal completed and, when it was the skill's last
// open goal, marks the skill completed as well. Both updates happen in
// one transaction so the derived skill state can never drift from its
// goals. Reports whether the skill flipped.
func (r *goalRepository) Complete(userID, goalID string) (bool, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	goal := &model.Goal{}
	err = tx.Get(goal, `SELECT * FROM goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err == sql.ErrNoRows {
		return false, ErrGoalNotFound
	}
	if err != nil {
		return false, err
	}

	now := time.Now()

	_, err = tx.Exec(`UPDATE goals SET is_completed = TRUE, updated_at = $1 WHERE id = $2`, now, goalID)
	if err != nil {
		return false, err
	}

	var remaining int
	err = tx.Get(&remaining, `SELECT COUNT(*) FROM goals WHERE skill_id = $1 AND user_id = $2 AND NOT is_completed AND id != $3`,
		goal.SkillID, userID, goalID)
	if err != nil {
		return false, err
	}

	skillCompleted := remaining == 0
	if skillCompleted {
		_, err = tx.Exec(`UPDATE skills SET is_completed = TRUE, is_active = FALSE, updated_at = $1 WHERE id = $2 AND user_id = $3`,
			now, goal.SkillID, userID)
		if err != nil {
			return false, err
		}
	}

	return skillCompleted, tx.Commit()
}

func (r *goalRepository) Delete(userID, goalID string) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, goalID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}
