package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/skilltrackhq/skilltrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEntry(t *testing.T, db *sqlx.DB, userID, skillID string, day time.Time, hours int) *model.ProgressEntry {
	t.Helper()

	repo := NewProgressRepository(db)
	now := time.Now()
	entry := &model.ProgressEntry{
		ID:         uuid.New().String(),
		UserID:     userID,
		SkillID:    skillID,
		EntryDate:  model.DateOnly(day),
		ActualTime: hours,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, repo.Create(entry))
	return entry
}

func TestProgressRepositoryRejectsSecondEntrySameDay(t *testing.T) {
	db := testutil.NewDB(t)
	user := seedUser(t, db)
	skill := seedSkill(t, db, user.ID)
	repo := NewProgressRepository(db)

	day := model.DateOnly(time.Now())
	seedEntry(t, db, user.ID, skill.ID, day, 2)

	dup := &model.ProgressEntry{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		SkillID:    skill.ID,
		EntryDate:  day,
		ActualTime: 3,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	err := repo.Create(dup)
	assert.ErrorIs(t, err, ErrDuplicateProgress)

	entries, err := repo.Entries(user.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestProgressRepositoryAllowsSameDayDifferentSkill(t *testing.T) {
	db := testutil.NewDB(t)
	user := seedUser(t, db)
	skillA := seedSkill(t, db, user.ID)
	skillB := seedSkill(t, db, user.ID)
	repo := NewProgressRepository(db)

	day := model.DateOnly(time.Now())
	seedEntry(t, db, user.ID, skillA.ID, day, 2)
	seedEntry(t, db, user.ID, skillB.ID, day, 1)

	entries, err := repo.Entries(user.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestProgressRepositoryExistsForDay(t *testing.T) {
	db := testutil.NewDB(t)
	user := seedUser(t, db)
	skill := seedSkill(t, db, user.ID)
	repo := NewProgressRepository(db)

	day := model.DateOnly(time.Now())

	exists, err := repo.ExistsForDay(user.ID, skill.ID, day)
	require.NoError(t, err)
	assert.False(t, exists)

	seedEntry(t, db, user.ID, skill.ID, day, 2)

	exists, err = repo.ExistsForDay(user.ID, skill.ID, day)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForDay(user.ID, skill.ID, day.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProgressRepositoryEntriesSince(t *testing.T) {
	db := testutil.NewDB(t)
	user := seedUser(t, db)
	skill := seedSkill(t, db, user.ID)
	repo := NewProgressRepository(db)

	today := model.DateOnly(time.Now())
	seedEntry(t, db, user.ID, skill.ID, today, 1)
	seedEntry(t, db, user.ID, skill.ID, today.AddDate(0, 0, -3), 2)
	seedEntry(t, db, user.ID, skill.ID, today.AddDate(0, 0, -10), 3)

	entries, err := repo.EntriesSince(user.ID, today.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Ascending by entry date
	assert.True(t, entries[0].EntryDate.Before(entries[1].EntryDate))
}

func TestProgressRepositoryRecent(t *testing.T) {
	db := testutil.NewDB(t)
	user := seedUser(t, db)
	skill := seedSkill(t, db, user.ID)
	repo := NewProgressRepository(db)

	today := model.DateOnly(time.Now())
	for i := 0; i < 4; i++ {
		seedEntry(t, db, user.ID, skill.ID, today.AddDate(0, 0, -i), i+1)
	}

	recent, err := repo.Recent(user.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.True(t, recent[0].EntryDate.After(recent[1].EntryDate))
}

func TestProgressRepositoryUpdate(t *testing.T) {
	db := testutil.NewDB(t)
	user := seedUser(t, db)
	skill := seedSkill(t, db, user.ID)
	repo := NewProgressRepository(db)

	entry := seedEntry(t, db, user.ID, skill.ID, time.Now(), 2)

	entry.ActualTime = 5
	entry.Feedback = "better"
	require.NoError(t, repo.Update(entry))

	got, err := repo.ByID(user.ID, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.ActualTime)
	assert.Equal(t, "better", got.Feedback)
}
