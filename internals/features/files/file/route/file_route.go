package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/files/file/controller"
	userModel "tutorku_backend/internals/features/users/auth/model"
	authMiddleware "tutorku_backend/internals/middlewares/auth"
)

func FileRoutes(app *fiber.App, db *gorm.DB) {
	fileCtrl := controller.NewFileController(db)

	teacherOnly := authMiddleware.OnlyRoles(
		"Hanya guru yang boleh mengunggah file",
		userModel.RoleTeacher,
	)

	files := app.Group("/files", authMiddleware.AuthMiddleware())
	files.Post("/upload/:lessonId", teacherOnly, fileCtrl.UploadFile)
	files.Get("/lesson/:lessonId", fileCtrl.GetLessonFiles)
	files.Get("/download/:id", fileCtrl.DownloadFile)
	files.Delete("/:id", fileCtrl.DeleteFile)
}
