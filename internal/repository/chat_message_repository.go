package repository

import (
	"fmt"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

type ChatMessageRepository struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

// Create persists one exchange. The user message and bot response land in a
// single row, so the pair commits atomically.
func (r *ChatMessageRepository) Create(message *model.ChatMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("create chat message failed: %w", err)
	}
	return nil
}

// ListRecent returns up to limit exchanges, newest first.
func (r *ChatMessageRepository) ListRecent(limit int) ([]model.ChatMessage, error) {
	if limit <= 0 {
		limit = 10
	}

	var messages []model.ChatMessage
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("list chat messages failed: %w", err)
	}
	return messages, nil
}

func (r *ChatMessageRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&model.ChatMessage{}).Error; err != nil {
		return fmt.Errorf("clear chat messages failed: %w", err)
	}
	return nil
}

func (r *ChatMessageRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.ChatMessage{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count chat messages failed: %w", err)
	}
	return count, nil
}
