package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"plume/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers  int
	NumGroups int
	NumPosts  int
}

var groupTitles = []string{
	"General", "Movies", "Music", "Gaming", "Fitness", "Sports",
	"Technology", "Anime", "Books", "Food", "Travel", "Programming",
	"Linux", "Art", "History", "Philosophy", "Science", "Pets",
	"Finance", "Photography",
}

// Seeder populates the database with demo content.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	rand    *rand.Rand
}

// NewSeeder creates a Seeder bound to the given DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db),
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded content. Child tables go first so foreign key
// constraints hold on stores without cascading deletes.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.Follow{},
		&models.Comment{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	return nil
}

// SeedCommunity creates users, groups, posts on a mix of groups and the
// global feed, comments, and a follow mesh between the users.
func (s *Seeder) SeedCommunity(opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 25
	}
	if opts.NumGroups <= 0 || opts.NumGroups > len(groupTitles) {
		opts.NumGroups = 8
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 100
	}

	log.Printf("Seeding %d users, %d groups, %d posts...", opts.NumUsers, opts.NumGroups, opts.NumPosts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seeding user: %w", err)
		}
		users = append(users, user)
	}

	groups := make([]*models.Group, 0, opts.NumGroups)
	for _, title := range groupTitles[:opts.NumGroups] {
		title := title
		group, err := s.factory.CreateGroup(func(g *models.Group) { g.Title = title })
		if err != nil {
			return fmt.Errorf("seeding group: %w", err)
		}
		groups = append(groups, group)
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[s.rand.Intn(len(users))]
		// Roughly a third of the posts land on the global feed.
		var group *models.Group
		if s.rand.Intn(3) != 0 {
			group = groups[s.rand.Intn(len(groups))]
		}
		post, err := s.factory.CreatePost(author, group)
		if err != nil {
			return fmt.Errorf("seeding post: %w", err)
		}
		posts = append(posts, post)
	}

	commented := 0
	for _, post := range posts {
		for i := s.rand.Intn(4); i > 0; i-- {
			commenter := users[s.rand.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("seeding comment: %w", err)
			}
			commented++
		}
	}

	followed := 0
	for _, follower := range users {
		for i := s.rand.Intn(6); i > 0; i-- {
			target := users[s.rand.Intn(len(users))]
			follow, err := s.factory.CreateFollow(follower, target)
			if err != nil {
				return fmt.Errorf("seeding follow: %w", err)
			}
			if follow != nil {
				followed++
			}
		}
	}

	log.Printf("Seeded %d users, %d groups, %d posts, %d comments, %d follows",
		len(users), len(groups), len(posts), commented, followed)
	return nil
}
