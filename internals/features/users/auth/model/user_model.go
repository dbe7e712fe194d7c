package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"not null;default:''" json:"name"`
	Email     string    `gorm:"size:255;unique;not null" json:"email"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// ValidRole memastikan role termasuk yang dikenal. Role tidak bisa diubah
// setelah registrasi.
func ValidRole(role string) bool {
	return role == RoleTeacher || role == RoleStudent
}
