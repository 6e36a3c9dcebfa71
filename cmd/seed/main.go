// Command main runs the database seeder for FriendConnect.
package main

import (
	"flag"
	"log"

	"friendconnect/internal/config"
	"friendconnect/internal/database"
	"friendconnect/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	tagsPerUser := flag.Int("tags", 4, "Hobby/interest tags per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d tags each, clean=%v\n", *numUsers, *tagsPerUser, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeederWithOptions(database.DB, seed.Options{TagsPerUser: *tagsPerUser})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if _, err := s.SeedSocialGraph(*numUsers); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All test users have the password: password123")
}
