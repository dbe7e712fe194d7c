package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/lessons/lesson/controller"
	userModel "tutorku_backend/internals/features/users/auth/model"
	authMiddleware "tutorku_backend/internals/middlewares/auth"
	"tutorku_backend/internals/realtime"
)

func LessonRoutes(app *fiber.App, db *gorm.DB, hub *realtime.Hub) {
	lessonCtrl := controller.NewLessonController(db)
	gradeCtrl := controller.NewGradeController(db, hub)

	teacherOnly := authMiddleware.OnlyRoles(
		"Hanya guru yang boleh melakukan aksi ini",
		userModel.RoleTeacher,
	)

	lessons := app.Group("/lessons", authMiddleware.AuthMiddleware())

	// Path statis didaftarkan sebelum /:id supaya tidak tertelan wildcard.
	lessons.Get("/students/all", teacherOnly, lessonCtrl.GetAllStudents)
	lessons.Get("/grades/student/:studentId", gradeCtrl.GetStudentGrades)

	lessons.Get("/", lessonCtrl.GetLessons)
	lessons.Post("/", teacherOnly, lessonCtrl.CreateLesson)
	lessons.Get("/:id", lessonCtrl.GetLesson)
	lessons.Put("/:id", teacherOnly, lessonCtrl.UpdateLesson)
	lessons.Put("/:id/homework", teacherOnly, lessonCtrl.UpdateHomework)
	lessons.Delete("/:id", teacherOnly, lessonCtrl.DeleteLesson)

	lessons.Post("/:id/grade", teacherOnly, gradeCtrl.SubmitGrade)
	lessons.Get("/:id/grades", teacherOnly, gradeCtrl.GetLessonGrades)
}
