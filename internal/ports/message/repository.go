package message

import (
	"time"

	"murmur/internal/core/message"
)

// MessageRepository is the outbound port for storing and loading messages.
type MessageRepository interface {
	Create(m *message.Message) (*message.Message, error)
	// FindAllActive returns messages that never expire or expire after now.
	FindAllActive(now time.Time) ([]*message.Message, error)
	// FindByID does not filter on expiry; expired rows are still readable
	// through direct lookup.
	FindByID(id string) (*message.Message, error)
	UpdateFields(id string, fields map[string]any) (int64, error)
	Delete(id string) (int64, error)
}

// UpdateMessageInput carries the optional fields of a partial update. A nil
// TTLSeconds clears the expiry; a set one recomputes it from "now".
type UpdateMessageInput struct {
	Content    *string `json:"content"`
	TTLSeconds *int64  `json:"expiresIn"`
}

// DeleteResponse acknowledges a delete request.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
