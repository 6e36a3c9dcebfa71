package models

import (
	"time"
)

// RequestStatus represents the lifecycle state of a friend request. Requests
// are deleted on accept or reject, so Pending is the only persisted state.
type RequestStatus string

// RequestStatusPending indicates a friend request awaiting a decision.
const RequestStatusPending RequestStatus = "Pending"

// FriendRequest is a directed proposal from sender to receiver. The composite
// unique index enforces at most one request per ordered (sender, receiver)
// pair.
type FriendRequest struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	SenderID   uint          `gorm:"not null;uniqueIndex:idx_request_pair" json:"senderId"`
	ReceiverID uint          `gorm:"not null;uniqueIndex:idx_request_pair" json:"receiverId"`
	Status     RequestStatus `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	CreatedAt  time.Time     `json:"-"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}

// TableName specifies the table name for GORM
func (FriendRequest) TableName() string {
	return "friend_requests"
}

// Friendship is a directed edge meaning "owner recorded friend". Exactly one
// edge is created when the owner accepts the friend's request.
//
// Derived views, applied uniformly across the API:
//
//	following(x) = friend_ids of rows where owner_id = x
//	followers(x) = owner_ids of rows where friend_id = x
type Friendship struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"userId"`
	FriendID  uint      `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"friendId"`
	CreatedAt time.Time `json:"-"`

	Owner  User `gorm:"foreignKey:OwnerID" json:"-"`
	Friend User `gorm:"foreignKey:FriendID" json:"-"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}
