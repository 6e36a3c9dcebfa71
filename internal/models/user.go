// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered FriendConnect account. The email doubles as
// the login username.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// UserSummary is the reduced user shape returned in list responses.
type UserSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// FriendStatus is the relationship annotation attached to user listings.
// The wire strings are fixed by the legacy client.
type FriendStatus string

const (
	// FriendStatusNone means no request or friendship exists yet.
	FriendStatusNone FriendStatus = "Send request"
	// FriendStatusRequested means the caller has a pending outbound request.
	FriendStatusRequested FriendStatus = "Requested"
	// FriendStatusFriend means the caller has recorded the user as a friend.
	FriendStatusFriend FriendStatus = "Already Friend"
)

// AnnotatedUser is a user summary carrying the caller-relative friend status.
type AnnotatedUser struct {
	ID     uint         `json:"id"`
	Name   string       `json:"name"`
	Status FriendStatus `json:"status"`
}
