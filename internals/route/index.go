package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chatRoute "tutorku_backend/internals/features/chats/chat/route"
	messageRoute "tutorku_backend/internals/features/chats/message/route"
	fileRoute "tutorku_backend/internals/features/files/file/route"
	lessonRoute "tutorku_backend/internals/features/lessons/lesson/route"
	authRoute "tutorku_backend/internals/features/users/auth/route"
	"tutorku_backend/internals/middlewares"
	"tutorku_backend/internals/realtime"
)

// SetupRoutes memasang seluruh fitur plus endpoint websocket.
func SetupRoutes(app *fiber.App, db *gorm.DB, hub *realtime.Hub) {
	app.Use(middlewares.GlobalRateLimiter())

	authRoute.AuthRoutes(app, db)
	chatRoute.ChatRoutes(app, db)
	messageRoute.MessageRoutes(app, db, hub)
	lessonRoute.LessonRoutes(app, db, hub)
	fileRoute.FileRoutes(app, db)

	realtime.RegisterRoutes(app, hub)
}
