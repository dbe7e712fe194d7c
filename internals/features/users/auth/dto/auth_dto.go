package dto

import (
	"tutorku_backend/internals/features/users/auth/model"

	"github.com/google/uuid"
)

// ============================
// Request DTO
// ============================

type RegisterRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=teacher student"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name *string `json:"name" validate:"omitempty,max=100"`
}

// ============================
// Response DTO
// ============================

// AuthResponse dikirim balik setelah register/login (token + profil singkat).
type AuthResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"userId"`
	Role   string    `json:"role"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
}

type ProfileResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// ============================
// Converter
// ============================

func ToAuthResponse(token string, u model.UserModel) AuthResponse {
	return AuthResponse{
		Token:  token,
		UserID: u.ID,
		Role:   u.Role,
		Name:   u.Name,
		Email:  u.Email,
	}
}

func ToProfileResponse(u model.UserModel) ProfileResponse {
	return ProfileResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
