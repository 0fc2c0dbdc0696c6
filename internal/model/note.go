package model

import "time"

const (
	NoteTypeNotes     = "notes"
	NoteTypeRoadmap   = "roadmap"
	NoteTypeReference = "reference"
)

// Note is a user/skill-scoped uploaded document. The stored file is a
// File row with OwnerType "note".
type Note struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	SkillID    string    `db:"skill_id" json:"skill_id"`
	Title      string    `db:"title" json:"title"`
	NoteType   string    `db:"note_type" json:"note_type"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`

	// Computed, not stored
	FileURL string `db:"-" json:"file_url,omitempty"`
}

func ValidNoteType(noteType string) bool {
	switch noteType {
	case NoteTypeNotes, NoteTypeRoadmap, NoteTypeReference:
		return true
	}
	return false
}
