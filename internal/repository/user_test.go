package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/skilltrackhq/skilltrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        "dup@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(user))

	clone := &model.User{
		ID:           uuid.New().String(),
		Email:        "dup@example.com",
		PasswordHash: "y",
		CreatedAt:    time.Now(),
	}
	err := repo.Create(clone)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserRepositoryByEmail(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)

	user := seedUser(t, db)

	got, err := repo.ByEmail(user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.ByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileRepositoryRoundTrip(t *testing.T) {
	db := testutil.NewDB(t)
	user := seedUser(t, db)
	repo := NewProfileRepository(db)

	now := time.Now()
	profile := &model.Profile{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Name:      "Riley",
		Role:      model.RoleStudent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(profile))

	got, err := repo.ByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Riley", got.Name)

	got.Role = model.RoleFreelancer
	got.ExperienceLevel = model.ExperienceIntermediate
	got.Education = "self taught"
	require.NoError(t, repo.Update(got))

	got, err = repo.ByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleFreelancer, got.Role)
	assert.Equal(t, "self taught", got.Education)
}
