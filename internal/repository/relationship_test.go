package repository

import (
	"context"
	"testing"

	"friendconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRelationshipDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FriendRequest{},
		&models.Friendship{},
	))
	return db
}

func createUsers(t *testing.T, db *gorm.DB, n int) []models.User {
	t.Helper()
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		u := models.User{
			Name:     "user",
			Email:    string(rune('a'+i)) + "@example.com",
			Password: "hash",
		}
		require.NoError(t, db.Create(&u).Error)
		users = append(users, u)
	}
	return users
}

func TestAcceptRequestAtomicity(t *testing.T) {
	t.Parallel()

	db := setupRelationshipDB(t)
	repo := NewRelationshipRepository(db)
	ctx := context.Background()
	users := createUsers(t, db, 2)
	sender, receiver := users[0], users[1]

	req := &models.FriendRequest{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Status:     models.RequestStatusPending,
	}
	require.NoError(t, repo.CreateRequest(ctx, req))

	err := repo.AcceptRequest(ctx, req.ID, &models.Friendship{
		OwnerID:  receiver.ID,
		FriendID: sender.ID,
	})
	require.NoError(t, err)

	pending, err := repo.GetPendingRequest(ctx, sender.ID, receiver.ID)
	require.NoError(t, err)
	assert.Nil(t, pending, "accepted request must be deleted")

	edge, err := repo.GetFriendship(ctx, receiver.ID, sender.ID)
	require.NoError(t, err)
	require.NotNil(t, edge, "accept must record the friendship edge")
}

func TestAcceptRequestRollsBackOnDuplicateEdge(t *testing.T) {
	t.Parallel()

	db := setupRelationshipDB(t)
	repo := NewRelationshipRepository(db)
	ctx := context.Background()
	users := createUsers(t, db, 2)
	sender, receiver := users[0], users[1]

	// The edge already exists.
	require.NoError(t, db.Create(&models.Friendship{OwnerID: receiver.ID, FriendID: sender.ID}).Error)

	req := &models.FriendRequest{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Status:     models.RequestStatusPending,
	}
	require.NoError(t, repo.CreateRequest(ctx, req))

	err := repo.AcceptRequest(ctx, req.ID, &models.Friendship{
		OwnerID:  receiver.ID,
		FriendID: sender.ID,
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)

	// The rollback must leave the request in place: it cannot vanish without
	// producing its friendship.
	pending, err := repo.GetPendingRequest(ctx, sender.ID, receiver.ID)
	require.NoError(t, err)
	assert.NotNil(t, pending)
}

func TestCreateRequestDuplicatePair(t *testing.T) {
	t.Parallel()

	db := setupRelationshipDB(t)
	repo := NewRelationshipRepository(db)
	ctx := context.Background()
	users := createUsers(t, db, 2)

	first := &models.FriendRequest{SenderID: users[0].ID, ReceiverID: users[1].ID, Status: models.RequestStatusPending}
	require.NoError(t, repo.CreateRequest(ctx, first))

	dup := &models.FriendRequest{SenderID: users[0].ID, ReceiverID: users[1].ID, Status: models.RequestStatusPending}
	err := repo.CreateRequest(ctx, dup)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.Equal(t, "Request already exists", appErr.Message)
}

func TestFollowDirectionQueries(t *testing.T) {
	t.Parallel()

	db := setupRelationshipDB(t)
	repo := NewRelationshipRepository(db)
	ctx := context.Background()
	users := createUsers(t, db, 3)
	a, b, c := users[0], users[1], users[2]

	// a recorded b; c recorded a.
	require.NoError(t, db.Create(&models.Friendship{OwnerID: a.ID, FriendID: b.ID}).Error)
	require.NoError(t, db.Create(&models.Friendship{OwnerID: c.ID, FriendID: a.ID}).Error)

	following, err := repo.FollowingIDs(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{b.ID}, following)

	followers, err := repo.FollowerIDs(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{c.ID}, followers)

	// Friends-of-friends of b: owners with an edge to someone in {a}, minus b
	// and a themselves.
	fof, err := repo.OwnerIDsWithFriendIn(ctx, []uint{a.ID}, []uint{b.ID, a.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint{c.ID}, fof)
}
