package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"tutorku_backend/internals/configs"
	authService "tutorku_backend/internals/features/users/auth/service"
)

func protectedApp(extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{AuthMiddleware()}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"role":    c.Locals("userRole"),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func TestAuthMiddlewareWithoutToken(t *testing.T) {
	configs.JWTSecret = "rahasia-test"
	app := protectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, mau 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareWithInvalidToken(t *testing.T) {
	configs.JWTSecret = "rahasia-test"
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bukan.token.valid")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, mau 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareWithValidToken(t *testing.T) {
	configs.JWTSecret = "rahasia-test"
	token, err := authService.GenerateToken("abc-123", "teacher", "guru@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	app := protectedApp()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, mau 200", resp.StatusCode)
	}
}

func TestOnlyRolesBlocksOtherRole(t *testing.T) {
	configs.JWTSecret = "rahasia-test"
	token, err := authService.GenerateToken("abc-123", "student", "murid@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	app := protectedApp(OnlyRoles("Hanya guru", "teacher"))
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, mau 403", resp.StatusCode)
	}
}

func TestOnlyRolesAllowsMatchingRole(t *testing.T) {
	configs.JWTSecret = "rahasia-test"
	token, err := authService.GenerateToken("abc-123", "teacher", "guru@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	app := protectedApp(OnlyRoles("Hanya guru", "teacher"))
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, mau 200", resp.StatusCode)
	}
}
