package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shin101/warbler/database"
	"github.com/shin101/warbler/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    email,
		Password: "HASHED_PASSWORD",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func createTestMessage(t *testing.T, db *gorm.DB, ownerID uint, text string) *models.Message {
	t.Helper()
	msg, err := NewMessageRepository(db).Create(context.Background(), ownerID, text, time.Time{})
	require.NoError(t, err)
	return msg
}
