package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"tutorku_backend/internals/configs"
)

func TestHashAndCheckPassword(t *testing.T) {
	configs.BcryptCost = bcrypt.MinCost // biar test cepat

	hash, err := HashPassword("kata-sandi-1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "kata-sandi-1" {
		t.Fatal("password tersimpan plaintext")
	}

	if !CheckPasswordHash("kata-sandi-1", hash) {
		t.Error("password benar harusnya cocok")
	}
	if CheckPasswordHash("kata-sandi-2", hash) {
		t.Error("password salah harusnya tidak cocok")
	}
}

func TestHashPasswordClampsInvalidCost(t *testing.T) {
	configs.BcryptCost = 99 // di luar rentang bcrypt

	hash, err := HashPassword("kata-sandi")
	if err != nil {
		t.Fatalf("HashPassword dengan cost invalid: %v", err)
	}
	if !CheckPasswordHash("kata-sandi", hash) {
		t.Error("hash hasil clamp harusnya tetap valid")
	}
}
