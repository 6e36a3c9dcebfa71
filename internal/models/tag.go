package models

import (
	"time"
)

// TagKind distinguishes hobby tags from interest tags.
type TagKind string

const (
	// TagKindHobby marks a hobby tag.
	TagKindHobby TagKind = "hobby"
	// TagKindInterest marks an interest tag.
	TagKindInterest TagKind = "interest"
)

// PersonalizationTag is a free-text hobby or interest string attached to a
// user. Duplicate values per user are allowed on insert; removal is scoped by
// (user_id, kind, value) and deletes the first match.
type PersonalizationTag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_tags_user" json:"userId"`
	Kind      TagKind   `gorm:"type:varchar(16);not null" json:"kind"`
	Value     string    `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for GORM
func (PersonalizationTag) TableName() string {
	return "personalization_tags"
}
