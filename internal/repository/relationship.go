package repository

import (
	"context"
	"errors"

	"friendconnect/internal/models"

	"gorm.io/gorm"
)

// RelationshipRepository defines persistence operations for friend requests
// and friendship edges.
type RelationshipRepository interface {
	CreateRequest(ctx context.Context, req *models.FriendRequest) error
	GetPendingRequest(ctx context.Context, senderID, receiverID uint) (*models.FriendRequest, error)
	DeleteRequest(ctx context.Context, requestID uint) error
	SentReceiverIDs(ctx context.Context, senderID uint) ([]uint, error)
	ReceivedSenderIDs(ctx context.Context, receiverID uint) ([]uint, error)

	GetFriendship(ctx context.Context, ownerID, friendID uint) (*models.Friendship, error)
	FollowingIDs(ctx context.Context, ownerID uint) ([]uint, error)
	FollowerIDs(ctx context.Context, friendID uint) ([]uint, error)
	OwnerIDsWithFriendIn(ctx context.Context, friendIDs, excludeIDs []uint) ([]uint, error)

	AcceptRequest(ctx context.Context, requestID uint, friendship *models.Friendship) error
}

type relationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository returns a new RelationshipRepository implementation.
func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

func (r *relationshipRepository) CreateRequest(ctx context.Context, req *models.FriendRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Request already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *relationshipRepository) GetPendingRequest(ctx context.Context, senderID, receiverID uint) (*models.FriendRequest, error) {
	var req models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? AND receiver_id = ? AND status = ?",
			senderID, receiverID, models.RequestStatusPending).
		First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no pending request
		}
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

func (r *relationshipRepository) DeleteRequest(ctx context.Context, requestID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.FriendRequest{}, requestID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *relationshipRepository) SentReceiverIDs(ctx context.Context, senderID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Where("sender_id = ? AND status = ?", senderID, models.RequestStatusPending).
		Pluck("receiver_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *relationshipRepository) ReceivedSenderIDs(ctx context.Context, receiverID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Where("receiver_id = ? AND status = ?", receiverID, models.RequestStatusPending).
		Pluck("sender_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *relationshipRepository) GetFriendship(ctx context.Context, ownerID, friendID uint) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND friend_id = ?", ownerID, friendID).
		First(&friendship).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no edge
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

func (r *relationshipRepository) FollowingIDs(ctx context.Context, ownerID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("owner_id = ?", ownerID).
		Pluck("friend_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *relationshipRepository) FollowerIDs(ctx context.Context, friendID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("friend_id = ?", friendID).
		Pluck("owner_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *relationshipRepository) OwnerIDsWithFriendIn(ctx context.Context, friendIDs, excludeIDs []uint) ([]uint, error) {
	if len(friendIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	q := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Distinct("owner_id").
		Where("friend_id IN ?", friendIDs)
	if len(excludeIDs) > 0 {
		q = q.Where("owner_id NOT IN ?", excludeIDs)
	}
	if err := q.Pluck("owner_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// AcceptRequest atomically deletes the pending request and records the
// friendship edge. A failure in either step rolls back both, so a request can
// never vanish without producing its friendship.
func (r *relationshipRepository) AcceptRequest(ctx context.Context, requestID uint, friendship *models.Friendship) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.FriendRequest{}, requestID).Error; err != nil {
			return err
		}
		return tx.Create(friendship).Error
	})
	if err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("You are already a friend!")
		}
		return models.NewInternalError(err)
	}
	return nil
}
