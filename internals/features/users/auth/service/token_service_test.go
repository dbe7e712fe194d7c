package service

import (
	"strings"
	"testing"

	"tutorku_backend/internals/configs"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	configs.JWTSecret = "rahasia-test"

	token, err := GenerateToken("user-123", "teacher", "guru@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("token kosong")
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.ID != "user-123" {
		t.Errorf("ID = %q, mau %q", claims.ID, "user-123")
	}
	if claims.Role != "teacher" {
		t.Errorf("Role = %q, mau %q", claims.Role, "teacher")
	}
	if claims.Email != "guru@example.com" {
		t.Errorf("Email = %q, mau %q", claims.Email, "guru@example.com")
	}
}

func TestVerifyTokenRejectsTampered(t *testing.T) {
	configs.JWTSecret = "rahasia-test"

	token, err := GenerateToken("user-123", "student", "murid@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("format token aneh: %d bagian", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]
	if _, err := VerifyToken(tampered); err == nil {
		t.Error("token yang diubah harusnya ditolak")
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	configs.JWTSecret = "rahasia-a"
	token, err := GenerateToken("user-123", "student", "murid@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	configs.JWTSecret = "rahasia-b"
	if _, err := VerifyToken(token); err == nil {
		t.Error("token dari secret lain harusnya ditolak")
	}
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	configs.JWTSecret = ""
	if _, err := GenerateToken("user-123", "student", "murid@example.com"); err == nil {
		t.Error("tanpa secret harusnya error")
	}
}
