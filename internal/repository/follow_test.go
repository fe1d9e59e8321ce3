package repository

import (
	"context"
	"errors"
	"testing"

	"plume/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, repo UserRepository, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestFollowRepository_CreateAndExists(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice")
	bob := createTestUser(t, users, "bob")

	exists, err := follows.Exists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	follow := &models.Follow{UserID: alice.ID, FollowingID: bob.ID}
	require.NoError(t, follows.Create(ctx, follow))
	assert.Equal(t, "alice", follow.User.Username)
	assert.Equal(t, "bob", follow.Following.Username)

	exists, err = follows.Exists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// The reverse edge is a distinct pair
	exists, err = follows.Exists(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFollowRepository_DuplicateEdgeIsConflict(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice")
	bob := createTestUser(t, users, "bob")

	require.NoError(t, follows.Create(ctx, &models.Follow{UserID: alice.ID, FollowingID: bob.ID}))

	// The unique index rejects the duplicate even without any service-level check.
	err := follows.Create(ctx, &models.Follow{UserID: alice.ID, FollowingID: bob.ID})
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "store must contain exactly one edge")
}

func TestFollowRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice")
	bob := createTestUser(t, users, "bob")
	carol := createTestUser(t, users, "carol")

	require.NoError(t, follows.Create(ctx, &models.Follow{UserID: alice.ID, FollowingID: bob.ID}))
	require.NoError(t, follows.Create(ctx, &models.Follow{UserID: carol.ID, FollowingID: alice.ID}))
	require.NoError(t, follows.Create(ctx, &models.Follow{UserID: carol.ID, FollowingID: bob.ID}))

	// alice appears on both sides of the graph
	results, err := follows.Search(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = follows.Search(ctx, "carol")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Exact match only: no partial username matching
	results, err = follows.Search(ctx, "ali")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFollowRepository_DeletingUserRemovesEdges(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice")
	bob := createTestUser(t, users, "bob")

	require.NoError(t, follows.Create(ctx, &models.Follow{UserID: alice.ID, FollowingID: bob.ID}))
	require.NoError(t, users.Delete(ctx, bob.ID))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
