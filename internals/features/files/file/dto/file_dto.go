package dto

import (
	"time"

	"github.com/google/uuid"

	"tutorku_backend/internals/features/files/file/model"
)

// FileItem: satu lampiran di listing per lesson. Filename internal tidak
// pernah dikirim; caller memakai id untuk download.
type FileItem struct {
	ID           uuid.UUID `json:"id"`
	LessonID     uuid.UUID `gorm:"column:lesson_id" json:"lesson_id"`
	OriginalName string    `gorm:"column:original_name" json:"original_name"`
	MimeType     string    `gorm:"column:mime_type" json:"mime_type"`
	Size         int64     `json:"size"`
	UploadedBy   uuid.UUID `gorm:"column:uploaded_by" json:"uploaded_by"`
	UploaderName string    `gorm:"column:uploader_name" json:"uploader_name"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

type UploadedFileResponse struct {
	ID           uuid.UUID `json:"id"`
	LessonID     uuid.UUID `json:"lesson_id"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToUploadedFileResponse(f model.FileModel) UploadedFileResponse {
	return UploadedFileResponse{
		ID:           f.ID,
		LessonID:     f.LessonID,
		OriginalName: f.OriginalName,
		MimeType:     f.MimeType,
		Size:         f.Size,
		CreatedAt:    f.CreatedAt,
	}
}
