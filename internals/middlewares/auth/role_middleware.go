package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "tutorku_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError validasi role + custom error message
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "Unauthorized: informasi role tidak ada")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Anda tidak berhak mengakses resource ini"
		}
		return helper.ErrorWithCode(c, fiber.StatusForbidden, helper.CodeForbidden, customForbiddenMessage)
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
