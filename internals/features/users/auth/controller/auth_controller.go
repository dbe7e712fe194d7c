package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/users/auth/dto"
	"tutorku_backend/internals/features/users/auth/model"
	"tutorku_backend/internals/features/users/auth/service"
	helper "tutorku_backend/internals/helpers"
)

var validateProfile = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

// =======================
// 👤 Profile
// =======================
func (ac *AuthController) Profile(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "User ID tidak ada di context")
	}
	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "Format user ID tidak valid")
	}

	var user model.UserModel
	if err := ac.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pengguna tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	return c.JSON(dto.ToProfileResponse(user))
}

func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "User ID tidak ada di context")
	}
	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "Format user ID tidak valid")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validateProfile.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// COALESCE: field yang tidak dikirim tidak berubah.
	res := ac.DB.Model(&model.UserModel{}).
		Where("id = ?", userUUID).
		Update("name", gorm.Expr("COALESCE(?, name)", req.Name))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Pengguna tidak ditemukan")
	}

	return c.JSON(fiber.Map{"message": "Profil berhasil diperbarui"})
}
