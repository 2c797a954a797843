package message

import (
	"time"

	"github.com/gofrs/uuid"
	"murmur/internal/core/user"
)

// Message is an ephemeral note. A nil ExpiresAt means it never expires;
// an ExpiresAt in the past hides the row from listings but the row stays.
type Message struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36)" json:"id"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	ExpiresAt *time.Time `json:"expiresAt"`
	UserID    uuid.UUID  `gorm:"type:char(36);not null" json:"userId"`
	User      *user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
