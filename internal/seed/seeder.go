package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"friendconnect/internal/models"

	"gorm.io/gorm"
)

// Options tunes the seeder.
type Options struct {
	// SkipBcrypt stores plaintext passwords; useful only for profiling seeds.
	SkipBcrypt bool
	// TagsPerUser caps how many hobby/interest tags each user gets.
	TagsPerUser int
}

// Seeder orchestrates demo-data creation.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	rng     *rand.Rand
}

// NewSeeder creates a Seeder with default options.
func NewSeeder(db *gorm.DB) *Seeder {
	return NewSeederWithOptions(db, Options{TagsPerUser: 4})
}

// NewSeederWithOptions creates a Seeder with explicit options.
func NewSeederWithOptions(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db, opts),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll deletes all seeded rows. Order respects foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	tables := []string{
		"personalization_tags",
		"friend_requests",
		"friendships",
		"users",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// SeedSocialGraph creates numUsers users, links roughly a third of all pairs
// into friendships, leaves a batch of pending requests, and tags every user
// with a few hobbies and interests. All users share the password
// "password123".
func (s *Seeder) SeedSocialGraph(numUsers int) ([]models.User, error) {
	if numUsers < 2 {
		numUsers = 2
	}

	users := make([]models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("creating user %d: %w", i, err)
		}
		users = append(users, *user)
	}
	log.Printf("Created %d users", len(users))

	friendships := 0
	requests := 0
	for i := range users {
		for j := range users {
			if i == j {
				continue
			}
			switch s.rng.Intn(6) {
			case 0:
				// users[i] accepted a request from users[j]
				if _, err := s.factory.CreateFriendship(users[i].ID, users[j].ID); err != nil {
					return nil, err
				}
				friendships++
			case 1:
				if _, err := s.factory.CreateRequest(users[i].ID, users[j].ID); err != nil {
					return nil, err
				}
				requests++
			}
		}
	}
	log.Printf("Created %d friendships, %d pending requests", friendships, requests)

	tags := 0
	perUser := s.factory.opts.TagsPerUser
	if perUser <= 0 {
		perUser = 4
	}
	for _, user := range users {
		for k := 0; k < perUser; k++ {
			var err error
			if k%2 == 0 {
				_, err = s.factory.CreateTag(user.ID, models.TagKindHobby, s.factory.RandomHobby())
			} else {
				_, err = s.factory.CreateTag(user.ID, models.TagKindInterest, s.factory.RandomInterest())
			}
			if err != nil {
				return nil, err
			}
			tags++
		}
	}
	log.Printf("Created %d personalization tags", tags)

	return users, nil
}
