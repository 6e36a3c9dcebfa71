// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"friendconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var hobbyPool = []string{
	"chess", "hiking", "photography", "cooking", "painting",
	"cycling", "gardening", "climbing", "pottery", "running",
	"swimming", "origami", "birdwatching", "woodworking", "baking",
}

var interestPool = []string{
	"astronomy", "history", "machine learning", "jazz", "philosophy",
	"board games", "film noir", "linguistics", "architecture", "poetry",
	"cryptography", "economics", "mythology", "street food", "travel",
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:  gofakeit.Name(),
		Email: fmt.Sprintf("%s%d@%s", gofakeit.Username(), gofakeit.Number(100, 999), gofakeit.DomainName()),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateFriendship records that owner accepted a request from friend.
func (f *Factory) CreateFriendship(ownerID, friendID uint) (*models.Friendship, error) {
	friendship := &models.Friendship{
		OwnerID:  ownerID,
		FriendID: friendID,
	}
	if err := f.db.Create(friendship).Error; err != nil {
		return nil, err
	}
	return friendship, nil
}

// CreateRequest persists a pending friend request between two users.
func (f *Factory) CreateRequest(senderID, receiverID uint) (*models.FriendRequest, error) {
	request := &models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.RequestStatusPending,
	}
	if err := f.db.Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// CreateTag persists a hobby or interest tag for the user.
func (f *Factory) CreateTag(userID uint, kind models.TagKind, value string) (*models.PersonalizationTag, error) {
	tag := &models.PersonalizationTag{
		UserID: userID,
		Kind:   kind,
		Value:  value,
	}
	if err := f.db.Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// RandomHobby picks a hobby value from the pool.
func (f *Factory) RandomHobby() string {
	return hobbyPool[f.rng.Intn(len(hobbyPool))]
}

// RandomInterest picks an interest value from the pool.
func (f *Factory) RandomInterest() string {
	return interestPool[f.rng.Intn(len(interestPool))]
}
