package model

import (
	"time"

	"github.com/google/uuid"
)

// FileModel merepresentasikan tabel files. filename adalah nama acak di disk
// (unik), original_name adalah nama asli dari pengunggah untuk ditampilkan.
type FileModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LessonID     uuid.UUID `gorm:"column:lesson_id;type:uuid;not null" json:"lesson_id"`
	UploadedBy   uuid.UUID `gorm:"column:uploaded_by;type:uuid;not null" json:"uploaded_by"`
	Filename     string    `gorm:"column:filename;not null;unique" json:"filename"`
	OriginalName string    `gorm:"column:original_name;not null" json:"original_name"`
	MimeType     string    `gorm:"column:mime_type;not null" json:"mime_type"`
	Size         int64     `gorm:"column:size;not null" json:"size"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FileModel) TableName() string {
	return "files"
}
