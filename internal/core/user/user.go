package user

import (
	"time"

	"github.com/gofrs/uuid"
)

// User is an account holder. The password column stores a bcrypt hash only,
// and the json:"-" tag keeps it out of every serialized view.
type User struct {
	ID           uuid.UUID `gorm:"primary_key;type:char(36)" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	EmailAddress string    `gorm:"unique;not null" json:"emailAddress"`
	FirstName    string    `gorm:"not null" json:"firstName"`
	LastName     string    `gorm:"not null" json:"lastName"`
	Password     string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
