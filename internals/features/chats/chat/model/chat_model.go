package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatModel merepresentasikan tabel chats: satu guru, satu murid.
// Duplikat (teacher, student, title) sengaja dibiarkan — tidak ada unique.
type ChatModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;not null" json:"teacher_id"`
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;not null" json:"student_id"`
	Title     string    `gorm:"not null" json:"title"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ChatModel) TableName() string {
	return "chats"
}
