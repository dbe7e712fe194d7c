package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Kode error stabil per kategori (machine-readable, bukan cuma pesan).
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeAuth        = "AUTH_ERROR"
	CodeForbidden   = "FORBIDDEN"
	CodeNotFound    = "NOT_FOUND"
	CodeConflict    = "CONFLICT"
	CodePersistence = "PERSISTENCE_ERROR"
)

// errorCodeFor memetakan status HTTP ke kode taksonomi default.
func errorCodeFor(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return CodeValidation
	case fiber.StatusUnauthorized:
		return CodeAuth
	case fiber.StatusForbidden:
		return CodeForbidden
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusConflict:
		return CodeConflict
	default:
		return CodePersistence
	}
}

// ✅ Error Response sederhana (kode taksonomi mengikuti status)
func Error(c *fiber.Ctx, status int, message string) error {
	return ErrorWithCode(c, status, errorCodeFor(status), message)
}

// ✅ Error Response dengan kode taksonomi eksplisit
func ErrorWithCode(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"code":    status,
		"status":  "error",
		"error":   code,
		"message": message,
	})
}

// ✅ Error Response advance, bisa kirim multiple field error
func ErrorWithDetails(c *fiber.Ctx, status int, message string, errors interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"code":    status,
		"status":  "error",
		"error":   errorCodeFor(status),
		"message": message,
		"errors":  errors,
	})
}

// ✅ Khusus error validasi (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", errorsMap)
}
