package service

import (
	"testing"
	"time"

	"github.com/skilltrackhq/skilltrack/internal/repository"
	"github.com/skilltrackhq/skilltrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *ProfileService) {
	t.Helper()

	db := testutil.NewDB(t)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	auth := NewAuthService(userRepo, profileRepo, "test-secret", false, time.Hour)
	return auth, NewProfileService(profileRepo)
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	auth, profiles := newAuthService(t)

	user, err := auth.Register("Dana@Example.com", "a long enough secret", "Dana")
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", user.Email)

	profile, err := profiles.ByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana", profile.Name)

	got, err := auth.Login("dana@example.com", "a long enough secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthServiceRejectsDuplicateEmail(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Register("dana@example.com", "a long enough secret", "Dana")
	require.NoError(t, err)

	_, err = auth.Register("dana@example.com", "another long secret!", "Dana Two")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthServiceRejectsBadInput(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Register("not-an-email", "a long enough secret", "Dana")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = auth.Register("dana@example.com", "short", "Dana")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = auth.Register("dana@example.com", "a long enough secret", "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Register("dana@example.com", "a long enough secret", "Dana")
	require.NoError(t, err)

	_, err = auth.Login("dana@example.com", "wrong password here!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login("nobody@example.com", "a long enough secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceJWTRoundTrip(t *testing.T) {
	auth, _ := newAuthService(t)

	user, err := auth.Register("dana@example.com", "a long enough secret", "Dana")
	require.NoError(t, err)

	token, err := auth.GenerateJWT(user)
	require.NoError(t, err)

	claims, err := auth.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
}

func TestAuthServiceRejectsTamperedJWT(t *testing.T) {
	auth, _ := newAuthService(t)

	user, err := auth.Register("dana@example.com", "a long enough secret", "Dana")
	require.NoError(t, err)

	token, err := auth.GenerateJWT(user)
	require.NoError(t, err)

	_, err = auth.VerifyJWT(token + "x")
	assert.Error(t, err)
}
