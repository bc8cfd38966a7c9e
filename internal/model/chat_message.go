package model

import "time"

// ChatMessage stores one completed exchange with the assistant. The user
// message and bot response are written together in a single commit; rows
// are never mutated afterwards.
type ChatMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserMessage string    `gorm:"type:text;not null" json:"user_message"`
	BotResponse string    `gorm:"type:text;not null" json:"bot_response"`
	CreatedAt   time.Time `json:"created_at"`
}
