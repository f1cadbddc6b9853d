package repository

import (
	"context"
	"testing"

	"github.com/shin101/warbler/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_FollowIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := createTestUser(t, db, "testuser", "test@test.com")
	b := createTestUser(t, db, "testuser2", "test2@test.com")

	require.NoError(t, repo.Follow(ctx, a.ID, b.ID))
	require.NoError(t, repo.Follow(ctx, a.ID, b.ID))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	following, err := repo.IsFollowing(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// The edge is directed.
	reverse, err := repo.IsFollowing(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, reverse)
}

func TestFollowRepository_IsFollowedBy(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := createTestUser(t, db, "testuser", "test@test.com")
	b := createTestUser(t, db, "testuser2", "test2@test.com")

	require.NoError(t, repo.Follow(ctx, a.ID, b.ID))

	followedBy, err := repo.IsFollowedBy(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, followedBy)

	followedBy, err = repo.IsFollowedBy(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, followedBy)
}

func TestFollowRepository_Symmetry(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	u1 := createTestUser(t, db, "testuser", "test@test.com")
	u2 := createTestUser(t, db, "testuser2", "test2@test.com")

	// Fresh users follow no one.
	following, err := repo.Following(ctx, u1.ID)
	require.NoError(t, err)
	assert.Empty(t, following)

	require.NoError(t, repo.Follow(ctx, u1.ID, u2.ID))

	following, err = repo.Following(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, u2.ID, following[0].ID)

	followers, err := repo.Followers(ctx, u2.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, u1.ID, followers[0].ID)

	// The reverse collections stay empty.
	followers, err = repo.Followers(ctx, u1.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
	following, err = repo.Following(ctx, u2.ID)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestFollowRepository_UnfollowMissingEdgeIsNoop(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := createTestUser(t, db, "testuser", "test@test.com")
	b := createTestUser(t, db, "testuser2", "test2@test.com")

	require.NoError(t, repo.Unfollow(ctx, a.ID, b.ID))

	require.NoError(t, repo.Follow(ctx, a.ID, b.ID))
	require.NoError(t, repo.Unfollow(ctx, a.ID, b.ID))

	following, err := repo.IsFollowing(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowRepository_SelfFollowRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)

	a := createTestUser(t, db, "testuser", "test@test.com")

	err := repo.Follow(context.Background(), a.ID, a.ID)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
