package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/skilltrackhq/skilltrack/internal/model"
)

var (
	ErrNoteNotFound = errors.New("note not found")
)

type NoteRepository interface {
	Create(note *model.Note) error
	ByID(userID, noteID string) (*model.Note, error)
	Notes(userID string) ([]*model.Note, error)
	NotesBySkill(userID, skillID string) ([]*model.Note, error)
	Recent(userID string, limit int) ([]*model.Note, error)
	Delete(userID, noteID string) error
}

type noteRepository struct {
	db *sqlx.DB
}

func NewNoteRepository(db *sqlx.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(note *model.Note) error {
	query := `INSERT INTO notes (id, user_id, skill_id, title, note_type, uploaded_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		note.ID,
		note.UserID,
		note.SkillID,
		note.Title,
		note.NoteType,
		note.UploadedAt,
	)

	return err
}

func (r *noteRepository) ByID(userID, noteID string) (*model.Note, error) {
	note := &model.Note{}
	query := `SELECT * FROM notes WHERE id = $1 AND user_id = $2`

	err := r.db.Get(note, query, noteID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrNoteNotFound
	}

	return note, err
}

func (r *noteRepository) Notes(userID string) ([]*model.Note, error) {
	var notes []*model.Note
	query := `SELECT * FROM notes WHERE user_id = $1 ORDER BY uploaded_at DESC`

	err := r.db.Select(&notes, query, userID)
	if err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *noteRepository) NotesBySkill(userID, skillID string) ([]*model.Note, error) {
	var notes []*model.Note
	query := `SELECT * FROM notes WHERE user_id = $1 AND skill_id = $2 ORDER BY uploaded_at DESC`

	err := r.db.Select(&notes, query, userID, skillID)
	if err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *noteRepository) Recent(userID string, limit int) ([]*model.Note, error) {
	var notes []*model.Note
	query := `SELECT * FROM notes WHERE user_id = $1 ORDER BY uploaded_at DESC LIMIT $2`

	err := r.db.Select(&notes, query, userID, limit)
	if err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *noteRepository) Delete(userID, noteID string) error {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, noteID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrNoteNotFound
	}

	return nil
}
