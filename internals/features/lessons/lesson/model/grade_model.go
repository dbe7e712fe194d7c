package model

import (
	"time"

	"github.com/google/uuid"
)

// GradeModel: satu nilai per (lesson, murid); unique di skema.
type GradeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LessonID  uuid.UUID `gorm:"column:lesson_id;type:uuid;not null" json:"lesson_id"`
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;not null" json:"student_id"`
	Grade     int       `gorm:"not null" json:"grade"`
	Feedback  string    `gorm:"not null;default:''" json:"feedback"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (GradeModel) TableName() string {
	return "grades"
}
