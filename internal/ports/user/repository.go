package user

import (
	"murmur/internal/core/message"
	"murmur/internal/core/post"
	"murmur/internal/core/user"
)

// UserRepository is the outbound port for storing and loading users.
type UserRepository interface {
	Create(u *user.User) (*user.User, error)
	FindByUsernameOrEmail(username, email string) (*user.User, error)
	FindByUsername(username string) (*user.User, error)
	FindByEmail(email string) (*user.User, error)
	FindByID(id string) (*user.User, error)
	// FindCredentials loads the user together with its posts and messages.
	FindCredentials(id string) (*Credentials, error)
	FindAll() ([]*user.User, error)
	DeleteByUsername(username string) error
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expiresAt"`
}

// Credentials is the full view of an account: the user plus everything it owns.
type Credentials struct {
	user.User
	Posts    []*post.Post       `json:"posts"`
	Messages []*message.Message `json:"messages"`
}
