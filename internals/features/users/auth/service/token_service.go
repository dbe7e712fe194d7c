package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"tutorku_backend/internals/configs"
)

// TokenClaims adalah payload token: {id, role, email}. Tanpa exp — token
// berlaku sampai secret dirotasi.
type TokenClaims struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken menandatangani token HS256 untuk identitas user.
func GenerateToken(id, role, email string) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	claims := TokenClaims{
		ID:    id,
		Role:  role,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// VerifyToken memvalidasi signature dan mengembalikan payload.
// Dipakai oleh HTTP middleware dan handshake websocket.
func VerifyToken(raw string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("metode signing tidak dikenal")
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token tidak valid")
	}
	return claims, nil
}
