package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/chats/chat/controller"
	authMiddleware "tutorku_backend/internals/middlewares/auth"
)

func ChatRoutes(app *fiber.App, db *gorm.DB) {
	chatCtrl := controller.NewChatController(db)

	chats := app.Group("/chats", authMiddleware.AuthMiddleware())
	chats.Get("/", chatCtrl.GetChats)
	chats.Post("/", chatCtrl.CreateChat)
	chats.Get("/:id", chatCtrl.GetChat)
	chats.Delete("/:id", chatCtrl.DeleteChat)
}
