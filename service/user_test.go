package service

import (
	"context"
	"testing"

	"github.com/shin101/warbler/database"
	"github.com/shin101/warbler/models"
	"github.com/shin101/warbler/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserService(t *testing.T) (*UserService, repository.UserRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	users := repository.NewUserRepository(db)
	svc, err := NewUserService(users, bcrypt.MinCost)
	require.NoError(t, err)
	return svc, users
}

func TestSignup_HashesPassword(t *testing.T) {
	svc, users := setupUserService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "testuser", "test@test.com", "secret123", "")
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	// The stored credential is never the plaintext.
	assert.NotEqual(t, "secret123", user.Password)
	assert.Equal(t, models.DefaultImageURL, user.ImageURL)
	assert.Equal(t, models.DefaultHeaderImageURL, user.HeaderImageURL)

	stored, err := users.GetByUsername(ctx, "testuser")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestSignup_Validation(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"Empty username", "", "test@test.com", "secret123"},
		{"Empty email", "testuser", "", "secret123"},
		{"Empty password", "testuser", "test@test.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tt.username, tt.email, tt.password, "")
			require.Error(t, err)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestSignup_DuplicateIsConflict(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "testuser", "test@test.com", "secret123", "")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "testuser", "other@test.com", "secret123", "")
	require.Error(t, err)
	assert.True(t, models.IsConflict(err))

	_, err = svc.Signup(ctx, "otheruser", "test@test.com", "secret123", "")
	require.Error(t, err)
	assert.True(t, models.IsConflict(err))
}

func TestAuthenticate_RoundTrip(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	created, err := svc.Signup(ctx, "testuser", "test@test.com", "secret123", "")
	require.NoError(t, err)

	got, err := svc.Authenticate(ctx, "testuser", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "testuser", got.Username)
}

func TestAuthenticate_NoMatch(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "testuser", "test@test.com", "secret123", "")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"Wrong password", "testuser", "wrongpassword"},
		{"Unknown username", "nobody", "secret123"},
		{"Both wrong", "nobody", "wrongpassword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Authenticate(ctx, tt.username, tt.password)
			assert.Nil(t, user)
			// Every miss returns the same sentinel.
			require.Error(t, err)
			assert.True(t, IsNoMatch(err))
		})
	}
}

func TestAuthenticate_UnusualCredentials(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	created, err := svc.Signup(ctx, "created new user!", "thisis4testing@hotmail.com", "1212", "")
	require.NoError(t, err)

	got, err := svc.Authenticate(ctx, "created new user!", "1212")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Authenticate(ctx, "created new user!", "wrong")
	require.Error(t, err)
	assert.True(t, IsNoMatch(err))
}

func TestDeleteAccount(t *testing.T) {
	svc, users := setupUserService(t)
	ctx := context.Background()

	created, err := svc.Signup(ctx, "testuser", "test@test.com", "secret123", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, created.ID))

	_, err = users.GetByID(ctx, created.ID)
	assert.True(t, models.IsNotFound(err))

	// Authentication after deletion is a plain no-match.
	_, err = svc.Authenticate(ctx, "testuser", "secret123")
	assert.True(t, IsNoMatch(err))
}
