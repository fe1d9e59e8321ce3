// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"plume/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving. All seeded users
// share the password "password123".
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
		Password: string(hashedPassword),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateGroup constructs and persists a topic group with a unique title.
func (f *Factory) CreateGroup(overrides ...func(*models.Group)) (*models.Group, error) {
	group := &models.Group{
		Title: fmt.Sprintf("%s %s %d", gofakeit.Adjective(), gofakeit.Noun(), gofakeit.Number(1, 9999)),
	}

	for _, override := range overrides {
		override(group)
	}

	if err := f.db.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// CreatePost constructs and persists a sample post for the given user,
// spread over the recent past so listings look lived-in.
func (f *Factory) CreatePost(user *models.User, group *models.Group, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Text:   gofakeit.Paragraph(1, 3, 8, "\n"),
		UserID: user.ID,
	}
	if group != nil {
		post.GroupID = &group.ID
	}

	daysBack := f.rand.Intn(90)
	minsBack := f.rand.Intn(24 * 60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a comment on the given post.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Text:   gofakeit.Sentence(f.rand.Intn(12) + 3),
		UserID: user.ID,
		PostID: post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateFollow persists a follow edge between two distinct users. Duplicate
// edges are silently skipped so callers can wire random meshes.
func (f *Factory) CreateFollow(follower, target *models.User) (*models.Follow, error) {
	if follower.ID == target.ID {
		return nil, nil
	}

	var count int64
	if err := f.db.Model(&models.Follow{}).
		Where("user_id = ? AND following_id = ?", follower.ID, target.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}

	follow := &models.Follow{
		UserID:      follower.ID,
		FollowingID: target.ID,
	}
	if err := f.db.Create(follow).Error; err != nil {
		return nil, err
	}
	return follow, nil
}
