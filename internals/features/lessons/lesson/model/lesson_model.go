package model

import (
	"time"

	"github.com/google/uuid"
)

// LessonModel merepresentasikan tabel lessons. teacher_id tidak pernah
// berubah setelah dibuat; date/duration diterima apa adanya dari caller.
type LessonModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeacherID    uuid.UUID  `gorm:"column:teacher_id;type:uuid;not null" json:"teacher_id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"not null;default:''" json:"description"`
	Date         *time.Time `gorm:"column:date" json:"date"`
	Duration     int        `gorm:"not null;default:0" json:"duration"`
	HomeworkText string     `gorm:"column:homework_text;not null;default:''" json:"homework_text"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (LessonModel) TableName() string {
	return "lessons"
}
