package database

import (
	"time"

	"gorm.io/gorm"
	"murmur/internal/core/message"
)

// MessageRepositoryDatabase implements the MessageRepository port on gorm.
type MessageRepositoryDatabase struct {
	db *gorm.DB
}

func NewMessageRepositoryDatabase(db *gorm.DB) *MessageRepositoryDatabase {
	return &MessageRepositoryDatabase{db: db}
}

func (repo *MessageRepositoryDatabase) Create(m *message.Message) (*message.Message, error) {
	if err := repo.db.Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (repo *MessageRepositoryDatabase) FindAllActive(now time.Time) ([]*message.Message, error) {
	var messages []*message.Message
	err := repo.db.Preload("User").
		Where("expires_at IS NULL OR expires_at > ?", now).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// FindByID deliberately skips the expiry filter; only listings hide
// expired messages.
func (repo *MessageRepositoryDatabase) FindByID(id string) (*message.Message, error) {
	var m message.Message
	if err := repo.db.Preload("User").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (repo *MessageRepositoryDatabase) UpdateFields(id string, fields map[string]any) (int64, error) {
	res := repo.db.Model(&message.Message{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (repo *MessageRepositoryDatabase) Delete(id string) (int64, error) {
	res := repo.db.Where("id = ?", id).Delete(&message.Message{})
	return res.RowsAffected, res.Error
}
