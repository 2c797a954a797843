package post

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"murmur/internal/core/user"
)

// Post is a user's posting. Soft deletion goes through gorm.DeletedAt, so
// deleted rows fall out of every query unless Unscoped is used explicitly.
// Metadata and Tags are serialized to JSON columns (MySQL has no array type).
type Post struct {
	ID        uuid.UUID      `gorm:"primary_key;type:char(36)" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	IsPrivate bool           `gorm:"not null;default:false" json:"isPrivate"`
	Metadata  map[string]any `gorm:"serializer:json" json:"metadata"`
	Tags      []string       `gorm:"serializer:json" json:"tags"`
	UserID    uuid.UUID      `gorm:"type:char(36);not null" json:"userId"`
	User      *user.User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Images    []Image        `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Image is an uploaded picture attached to a post at creation time.
type Image struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)" json:"id"`
	URL       string    `gorm:"not null" json:"url"`
	PostID    uuid.UUID `gorm:"type:char(36);not null" json:"postId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
