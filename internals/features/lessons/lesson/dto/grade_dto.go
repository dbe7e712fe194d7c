package dto

import (
	"time"

	"github.com/google/uuid"

	"tutorku_backend/internals/features/lessons/lesson/model"
)

type GradeResponse struct {
	ID        uuid.UUID `json:"id"`
	LessonID  uuid.UUID `json:"lesson_id"`
	StudentID uuid.UUID `json:"student_id"`
	Grade     int       `json:"grade"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}

// GradeEvent adalah payload event grade_updated ke room personal murid.
type GradeEvent struct {
	LessonID uuid.UUID `json:"lesson_id"`
	Grade    int       `json:"grade"`
	Feedback string    `json:"feedback"`
}

// StudentGradeItem: nilai seorang murid lintas lesson.
// TeacherName hanya terisi pada view murid.
type StudentGradeItem struct {
	ID          uuid.UUID  `json:"id"`
	LessonID    uuid.UUID  `gorm:"column:lesson_id" json:"lesson_id"`
	StudentID   uuid.UUID  `gorm:"column:student_id" json:"student_id"`
	Grade       int        `json:"grade"`
	Feedback    string     `json:"feedback"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	LessonTitle string     `gorm:"column:lesson_title" json:"lesson_title"`
	LessonDate  *time.Time `gorm:"column:lesson_date" json:"lesson_date"`
	TeacherName string     `gorm:"column:teacher_name" json:"teacher_name,omitempty"`
}

// LessonGradeItem: semua nilai satu lesson, dengan identitas murid.
type LessonGradeItem struct {
	ID           uuid.UUID `json:"id"`
	LessonID     uuid.UUID `gorm:"column:lesson_id" json:"lesson_id"`
	StudentID    uuid.UUID `gorm:"column:student_id" json:"student_id"`
	Grade        int       `json:"grade"`
	Feedback     string    `json:"feedback"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	StudentName  string    `gorm:"column:student_name" json:"student_name"`
	StudentEmail string    `gorm:"column:student_email" json:"student_email"`
}

func ToGradeResponse(g model.GradeModel) GradeResponse {
	return GradeResponse{
		ID:        g.ID,
		LessonID:  g.LessonID,
		StudentID: g.StudentID,
		Grade:     g.Grade,
		Feedback:  g.Feedback,
		CreatedAt: g.CreatedAt,
	}
}
