package userapp

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"murmur/internal/apperror"
	"murmur/internal/auth"
	userEntity "murmur/internal/core/user"
	userPort "murmur/internal/ports/user"
)

// UserService handles registration, authentication and account lookups.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
	logger         *zap.Logger
	now            func() time.Time
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
		logger:         logger,
		now:            time.Now,
	}
}

// Register creates a new account. A user with the same username or email
// address must not already exist; the check covers both fields at once.
// The password is stored as a bcrypt hash, never as plaintext.
func (s *UserService) Register(ctx context.Context, username, email, firstName, lastName, password string) (*userEntity.User, error) {
	existing, err := s.UserRepository.FindByUsernameOrEmail(username, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("Error checking existing user", zap.Error(err))
		return nil, apperror.Internal(err, "Failed to register user")
	}
	if existing != nil {
		return nil, apperror.Conflict("User with similar emailAddress or username already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to register user")
	}

	u := &userEntity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Username:     username,
		EmailAddress: email,
		FirstName:    firstName,
		LastName:     lastName,
		Password:     string(hashed),
	}

	created, err := s.UserRepository.Create(u)
	if err != nil {
		s.logger.Error("Error creating user", zap.String("username", username), zap.Error(err))
		return nil, apperror.Internal(err, "Failed to register user")
	}
	return created, nil
}

// Login verifies credentials and issues a signed token. The caller supplies
// an email address, a username, or both; both matching the same row when
// both are given.
func (s *UserService) Login(ctx context.Context, email, username, password string) (*userPort.LoginResponse, error) {
	if email == "" && username == "" {
		return nil, apperror.Validation("Either emailAddress or username must be provided")
	}

	var (
		u   *userEntity.User
		err error
	)
	if email != "" {
		u, err = s.UserRepository.FindByEmail(email)
	} else {
		u, err = s.UserRepository.FindByUsername(username)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("User with credentials not found")
	}
	if err != nil {
		s.logger.Error("Error finding user", zap.Error(err))
		return nil, apperror.Internal(err, "Failed to log in")
	}
	if username != "" && u.Username != username {
		return nil, apperror.NotFound("User with credentials not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid credentials were provided")
	}

	token, expiresAt, err := auth.Sign(u.ID.String(), u.Username, s.jwtKey, s.now())
	if err != nil {
		s.logger.Error("Error generating token", zap.Error(err))
		return nil, err
	}
	return &userPort.LoginResponse{AccessToken: token, ExpiresAt: expiresAt}, nil
}

// Get returns the account with everything it owns.
func (s *UserService) Get(ctx context.Context, id string) (*userPort.Credentials, error) {
	creds, err := s.UserRepository.FindCredentials(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("User with ID %s not found", id)
	}
	if err != nil {
		s.logger.Error("Error loading user", zap.String("id", id), zap.Error(err))
		return nil, apperror.Internal(err, "Failed to retrieve user")
	}
	return creds, nil
}

// List returns all accounts.
func (s *UserService) List(ctx context.Context) ([]*userEntity.User, error) {
	users, err := s.UserRepository.FindAll()
	if err != nil {
		s.logger.Error("Error listing users", zap.Error(err))
		return nil, apperror.Internal(err, "Failed to retrieve users")
	}
	return users, nil
}

// Delete removes the account with the given username. A missing username is
// a silent no-op, not an error.
func (s *UserService) Delete(ctx context.Context, username string) error {
	_, err := s.UserRepository.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Error("Error finding user to delete", zap.String("username", username), zap.Error(err))
		return apperror.Internal(err, "Failed to delete user")
	}

	if err := s.UserRepository.DeleteByUsername(username); err != nil {
		s.logger.Error("Error deleting user", zap.String("username", username), zap.Error(err))
		return apperror.Internal(err, "Failed to delete user")
	}
	return nil
}
