package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChatRequest struct {
	Title         string    `json:"title" validate:"required"`
	ParticipantID uuid.UUID `json:"participantId" validate:"required"`
}

// TeacherChatItem: daftar chat dari sudut pandang guru (lawan bicara = murid).
type TeacherChatItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"created_at"`
	StudentName string    `gorm:"column:student_name" json:"student_name"`
	StudentID   uuid.UUID `gorm:"column:student_id" json:"student_id"`
}

// StudentChatItem: daftar chat dari sudut pandang murid (lawan bicara = guru).
type StudentChatItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"created_at"`
	TeacherName string    `gorm:"column:teacher_name" json:"teacher_name"`
	TeacherID   uuid.UUID `gorm:"column:teacher_id" json:"teacher_id"`
}
