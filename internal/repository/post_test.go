package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"plume/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice")

	older := &models.Post{Text: "older", UserID: alice.ID, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.Post{Text: "newer", UserID: alice.ID, CreatedAt: time.Now()}
	require.NoError(t, posts.Create(ctx, older))
	require.NoError(t, posts.Create(ctx, newer))

	listed, err := posts.List(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "newer", listed[0].Text)
	assert.Equal(t, "older", listed[1].Text)
	assert.Equal(t, "alice", listed[0].Author.Username)
}

func TestPostRepository_ListByGroup(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	groups := NewGroupRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice")
	group := &models.Group{Title: "go"}
	require.NoError(t, groups.Create(ctx, group))

	require.NoError(t, posts.Create(ctx, &models.Post{Text: "in group", UserID: alice.ID, GroupID: &group.ID}))
	require.NoError(t, posts.Create(ctx, &models.Post{Text: "no group", UserID: alice.ID}))

	listed, err := posts.ListByGroup(ctx, group.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "in group", listed[0].Text)
}

func TestPostRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostRepository(db)

	_, err := posts.GetByID(context.Background(), 999)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostRepository_DeletingGroupDetachesPosts(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	groups := NewGroupRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice")
	group := &models.Group{Title: "go"}
	require.NoError(t, groups.Create(ctx, group))

	post := &models.Post{Text: "hello", UserID: alice.ID, GroupID: &group.ID}
	require.NoError(t, posts.Create(ctx, post))

	require.NoError(t, groups.Delete(ctx, group.ID))

	// Post survives with its group reference cleared, never deleted.
	reloaded, err := posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.GroupID)
}

func TestPostRepository_DeletingUserCascades(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice")
	bob := createTestUser(t, users, "bob")

	post := &models.Post{Text: "hello", UserID: alice.ID}
	require.NoError(t, posts.Create(ctx, post))
	require.NoError(t, comments.Create(ctx, &models.Comment{Text: "hi", UserID: bob.ID, PostID: post.ID}))

	require.NoError(t, users.Delete(ctx, alice.ID))

	var postCount, commentCount int64
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&commentCount).Error)
	assert.EqualValues(t, 0, postCount, "posts follow their author")
	assert.EqualValues(t, 0, commentCount, "comments follow their post")
}

func TestGroupRepository_DuplicateTitleIsConflict(t *testing.T) {
	db := setupTestDB(t)
	groups := NewGroupRepository(db)
	ctx := context.Background()

	require.NoError(t, groups.Create(ctx, &models.Group{Title: "go"}))

	err := groups.Create(ctx, &models.Group{Title: "go"})
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)
}
