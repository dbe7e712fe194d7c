package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "tutorku_backend/internals/features/users/auth/controller"
	rateLimiter "tutorku_backend/internals/middlewares"
	authMiddleware "tutorku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	auth := app.Group("/auth")

	// 🔓 Public
	auth.Post("/register", rateLimiter.LoginRateLimiter(), authController.Register)
	auth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)

	// 🔒 Protected
	auth.Get("/profile", authMiddleware.AuthMiddleware(), authController.Profile)
	auth.Put("/profile", authMiddleware.AuthMiddleware(), authController.UpdateProfile)
}
