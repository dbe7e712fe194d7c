package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ChatID    uuid.UUID `gorm:"column:chat_id;type:uuid;not null" json:"chat_id"`
	SenderID  uuid.UUID `gorm:"column:sender_id;type:uuid;not null" json:"sender_id"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MessageModel) TableName() string {
	return "messages"
}
