package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	authService "tutorku_backend/internals/features/users/auth/service"
	helper "tutorku_backend/internals/helpers"
)

// AuthMiddleware memverifikasi bearer token sebelum handler manapun jalan.
// Identitas hasil decode disimpan di Locals: user_id, userRole, userEmail.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "Akses ditolak. Token tidak diberikan.")
		}

		claims, err := authService.VerifyToken(tokenString)
		if err != nil {
			log.Printf("[WARNING] Token tidak valid: %v", err)
			return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "Token tidak valid")
		}

		c.Locals("user_id", claims.ID)
		c.Locals("userRole", claims.Role)
		c.Locals("userEmail", claims.Email)
		return c.Next()
	}
}
