package service

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/users/auth/dto"
	"tutorku_backend/internals/features/users/auth/model"
	helper "tutorku_backend/internals/helpers"
)

var validate = validator.New()

const pgUniqueViolation = "23505"

// Register membuat user baru lalu langsung mengeluarkan token (auto-login).
// Token baru ditandatangani setelah row user benar-benar tersimpan.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !model.ValidRole(req.Role) {
		return helper.Error(c, fiber.StatusBadRequest, "Role tidak dikenal")
	}

	// Pre-check email; unique constraint tetap jadi penjaga terakhir.
	var existing model.UserModel
	err := db.Select("id").Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return helper.ErrorWithCode(c, fiber.StatusBadRequest, helper.CodeConflict, "Email sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return helper.ErrorWithCode(c, fiber.StatusBadRequest, helper.CodeConflict, "Email sudah terdaftar")
		}
		log.Printf("[ERROR] register insert: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal registrasi")
	}

	token, err := GenerateToken(user.ID.String(), user.Role, user.Email)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToAuthResponse(token, user))
}

// Login memverifikasi kredensial dan mengeluarkan token.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Status tetap 401 supaya keberadaan akun tidak bocor lewat status code.
			return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeNotFound, "Pengguna tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "Password salah")
	}

	token, err := GenerateToken(user.ID.String(), user.Role, user.Email)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return c.JSON(dto.ToAuthResponse(token, user))
}
