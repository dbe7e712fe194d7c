package model

import (
	"time"

	"github.com/google/uuid"
)

const EnrollmentStatusEnrolled = "enrolled"

// EnrollmentModel menghubungkan lesson dengan murid.
// Unique (lesson_id, student_id) dijaga di skema.
type EnrollmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LessonID   uuid.UUID `gorm:"column:lesson_id;type:uuid;not null" json:"lesson_id"`
	StudentID  uuid.UUID `gorm:"column:student_id;type:uuid;not null" json:"student_id"`
	Status     string    `gorm:"type:varchar(20);not null;default:'enrolled'" json:"status"`
	EnrolledAt time.Time `gorm:"column:enrolled_at;autoCreateTime" json:"enrolled_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
