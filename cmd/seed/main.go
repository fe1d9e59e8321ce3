// Command main runs the database seeder for Plume.
package main

import (
	"flag"
	"log"

	"plume/internal/config"
	"plume/internal/database"
	"plume/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numGroups := flag.Int("groups", 8, "Number of topic groups to create")
	numPosts := flag.Int("posts", 100, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d groups, %d posts, clean=%v\n", *numUsers, *numGroups, *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.SeedCommunity(seed.Options{
		NumUsers:  *numUsers,
		NumGroups: *numGroups,
		NumPosts:  *numPosts,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! The database is populated with demo data.")
	log.Println("All seeded users have the password: password123")
}
