package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/chats/message/controller"
	authMiddleware "tutorku_backend/internals/middlewares/auth"
	"tutorku_backend/internals/realtime"
)

func MessageRoutes(app *fiber.App, db *gorm.DB, hub *realtime.Hub) {
	messageCtrl := controller.NewMessageController(db, hub)

	messages := app.Group("/messages", authMiddleware.AuthMiddleware())
	messages.Get("/:chatId", messageCtrl.GetMessages)
	messages.Post("/", messageCtrl.SendMessage)
	messages.Delete("/:id", messageCtrl.DeleteMessage)
}
