package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"tutorku_backend/internals/features/lessons/lesson/model"
)

// ============================
// Request DTO
// ============================

type CreateLessonRequest struct {
	Title        string      `json:"title" validate:"required"`
	Description  string      `json:"description"`
	Date         string      `json:"date" validate:"required"`
	Duration     int         `json:"duration" validate:"required,min=1"`
	HomeworkText string      `json:"homework_text"`
	StudentIDs   []uuid.UUID `json:"studentIds" validate:"required,min=1"`
}

// UpdateLessonRequest: field nil = tidak diubah. StudentIDs nil berarti
// enrollment tidak disentuh; slice kosong berarti semua enrollment dihapus.
type UpdateLessonRequest struct {
	Title        *string      `json:"title"`
	Description  *string      `json:"description"`
	Date         *string      `json:"date"`
	Duration     *int         `json:"duration"`
	HomeworkText *string      `json:"homework_text"`
	StudentIDs   *[]uuid.UUID `json:"studentIds"`
}

type HomeworkRequest struct {
	HomeworkText string `json:"homework_text" validate:"required"`
}

type GradeRequest struct {
	StudentID uuid.UUID `json:"studentId" validate:"required"`
	Grade     int       `json:"grade" validate:"required"`
	Feedback  string    `json:"feedback"`
}

// lessonDateLayouts: format tanggal yang diterima dari caller.
var lessonDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseLessonDate menerima beberapa format umum; string kosong = nil.
func ParseLessonDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range lessonDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("format tanggal tidak dikenali")
}

// ============================
// Response DTO
// ============================

// CreatedLessonResponse meng-echo studentIds yang diminta, tidak dibaca
// ulang dari storage.
type CreatedLessonResponse struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	TeacherID    uuid.UUID   `json:"teacher_id"`
	Date         *time.Time  `json:"date"`
	Duration     int         `json:"duration"`
	HomeworkText string      `json:"homework_text"`
	StudentIDs   []uuid.UUID `json:"studentIds"`
	CreatedAt    time.Time   `json:"created_at"`
}

// TeacherLessonItem: listing untuk guru, dengan jumlah murid terdaftar dan
// id murid-muridnya (di-aggregate di SQL, bukan query N+1).
type TeacherLessonItem struct {
	ID               uuid.UUID      `json:"id"`
	TeacherID        uuid.UUID      `gorm:"column:teacher_id" json:"teacher_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Date             *time.Time     `json:"date"`
	Duration         int            `json:"duration"`
	HomeworkText     string         `gorm:"column:homework_text" json:"homework_text"`
	CreatedAt        time.Time      `gorm:"column:created_at" json:"created_at"`
	EnrolledStudents int            `gorm:"column:enrolled_students" json:"enrolled_students"`
	StudentIDs       pq.StringArray `gorm:"column:student_ids;type:text[]" json:"studentIds"`
}

// TeacherLessonDetail: detail lesson untuk guru. Field lesson plus
// enrolled_students tampil flat di level atas, students menempel di sampingnya.
type TeacherLessonDetail struct {
	TeacherLessonItem
	Students []LessonStudentItem `json:"students"`
}

// StudentLessonItem: listing untuk murid, dengan nama guru dan status enrollment.
type StudentLessonItem struct {
	ID               uuid.UUID  `json:"id"`
	TeacherID        uuid.UUID  `gorm:"column:teacher_id" json:"teacher_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Date             *time.Time `json:"date"`
	Duration         int        `json:"duration"`
	HomeworkText     string     `gorm:"column:homework_text" json:"homework_text"`
	CreatedAt        time.Time  `gorm:"column:created_at" json:"created_at"`
	TeacherName      string     `gorm:"column:teacher_name" json:"teacher_name"`
	EnrollmentStatus string     `gorm:"column:enrollment_status" json:"enrollment_status"`
}

// LessonStudentItem: satu murid di detail lesson, berikut nilainya kalau ada.
type LessonStudentItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Status   string    `json:"status"`
	Grade    *int      `json:"grade"`
	Feedback *string   `json:"feedback"`
}

// StudentRosterItem: daftar semua akun murid (untuk guru memilih peserta).
type StudentRosterItem struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func ToCreatedLessonResponse(l model.LessonModel, studentIDs []uuid.UUID) CreatedLessonResponse {
	return CreatedLessonResponse{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		TeacherID:    l.TeacherID,
		Date:         l.Date,
		Duration:     l.Duration,
		HomeworkText: l.HomeworkText,
		StudentIDs:   studentIDs,
		CreatedAt:    l.CreatedAt,
	}
}
