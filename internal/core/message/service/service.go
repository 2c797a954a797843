package messageapp

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"murmur/internal/apperror"
	messageEntity "murmur/internal/core/message"
	messagePort "murmur/internal/ports/message"
)

// MessageService handles ephemeral messages. A time-to-live supplied at
// write time is converted immediately to an absolute expiry timestamp.
type MessageService struct {
	MessageRepository messagePort.MessageRepository
	logger            *zap.Logger
	now               func() time.Time
}

func NewMessageService(repo messagePort.MessageRepository, logger *zap.Logger) *MessageService {
	return &MessageService{
		MessageRepository: repo,
		logger:            logger,
		now:               time.Now,
	}
}

// Create stores a message. A zero ttl means the message never expires.
func (s *MessageService) Create(ctx context.Context, content string, ttlSeconds int64, userID string) (*messageEntity.Message, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, apperror.Validation("invalid userId")
	}

	m := &messageEntity.Message{
		ID:        uuid.Must(uuid.NewV4()),
		Content:   content,
		ExpiresAt: s.expiryFrom(ttlSeconds),
		UserID:    uid,
	}

	created, err := s.MessageRepository.Create(m)
	if err != nil {
		s.logger.Error("Error creating message", zap.String("userID", userID), zap.Error(err))
		return nil, apperror.Internal(err, "Failed to create message")
	}
	return created, nil
}

// List returns messages that never expire or have not expired yet,
// evaluated at call time. Expired rows stay in the table but are hidden.
func (s *MessageService) List(ctx context.Context) ([]*messageEntity.Message, error) {
	messages, err := s.MessageRepository.FindAllActive(s.now())
	if err != nil {
		s.logger.Error("Error listing messages", zap.Error(err))
		return nil, apperror.Internal(err, "Failed to retrieve messages")
	}
	return messages, nil
}

// Get returns one message by id. Unlike List, expired messages are still
// returned here.
func (s *MessageService) Get(ctx context.Context, id string) (*messageEntity.Message, error) {
	m, err := s.MessageRepository.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Message with ID %s not found", id)
	}
	if err != nil {
		s.logger.Error("Error finding message", zap.String("id", id), zap.Error(err))
		return nil, apperror.Internal(err, "Failed to find message with ID %s", id)
	}
	return m, nil
}

// Update rewrites content when supplied and always rewrites the expiry:
// recomputed from a fresh ttl when one is given, cleared otherwise.
func (s *MessageService) Update(ctx context.Context, id string, in messagePort.UpdateMessageInput) (*messageEntity.Message, error) {
	fields := map[string]any{"expires_at": nil}
	if in.Content != nil {
		fields["content"] = *in.Content
	}
	if in.TTLSeconds != nil {
		fields["expires_at"] = s.expiryFrom(*in.TTLSeconds)
	}

	affected, err := s.MessageRepository.UpdateFields(id, fields)
	if err != nil {
		s.logger.Error("Error updating message", zap.String("id", id), zap.Error(err))
		return nil, apperror.Internal(err, "Failed to update message with ID %s", id)
	}
	if affected == 0 {
		return nil, apperror.NotFound("Message with ID %s not found", id)
	}
	return s.Get(ctx, id)
}

// Delete removes the message row for good.
func (s *MessageService) Delete(ctx context.Context, id string) (*messagePort.DeleteResponse, error) {
	affected, err := s.MessageRepository.Delete(id)
	if err != nil {
		s.logger.Error("Error deleting message", zap.String("id", id), zap.Error(err))
		return nil, apperror.Internal(err, "Failed to remove message with ID %s", id)
	}
	if affected == 0 {
		return nil, apperror.NotFound("Message with ID %s not found", id)
	}
	return &messagePort.DeleteResponse{Deleted: true}, nil
}

func (s *MessageService) expiryFrom(ttlSeconds int64) *time.Time {
	if ttlSeconds <= 0 {
		return nil
	}
	t := s.now().Add(time.Duration(ttlSeconds) * time.Second)
	return &t
}
