package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	ChatID  uuid.UUID `json:"chatId" validate:"required"`
	Content string    `json:"content" validate:"required"`
}

// MessageItem adalah satu pesan berikut nama pengirimnya (hasil JOIN users).
// Dipakai untuk response HTTP dan payload event new_message.
type MessageItem struct {
	ID         uuid.UUID `json:"id"`
	ChatID     uuid.UUID `gorm:"column:chat_id" json:"chat_id"`
	SenderID   uuid.UUID `gorm:"column:sender_id" json:"sender_id"`
	SenderName string    `gorm:"column:sender_name" json:"sender_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}
