package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/lessons/lesson/dto"
	"tutorku_backend/internals/features/lessons/lesson/service"
	userModel "tutorku_backend/internals/features/users/auth/model"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/realtime"
)

type GradeController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewGradeController(db *gorm.DB, hub *realtime.Hub) *GradeController {
	return &GradeController{DB: db, Hub: hub}
}

// =======================
// 📝 Beri / perbarui nilai (upsert atomik)
// =======================
func (ctrl *GradeController) SubmitGrade(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
	}
	teacherID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "Format user ID tidak valid")
	}

	var req dto.GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validateLesson.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	grade, err := service.UpsertGrade(ctrl.DB, lessonID, teacherID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Fire-and-forget ke room personal murid; nilai sudah tersimpan.
	ctrl.Hub.Publish(realtime.UserRoom(req.StudentID.String()), "grade_updated", dto.GradeEvent{
		LessonID: lessonID,
		Grade:    grade.Grade,
		Feedback: grade.Feedback,
	})

	return c.JSON(dto.ToGradeResponse(grade))
}

// =======================
// 📄 Nilai seorang murid lintas lesson
// =======================
// Murid hanya boleh melihat miliknya sendiri; guru hanya nilai dari
// lesson yang dia ampu.
func (ctrl *GradeController) GetStudentGrades(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Murid tidak ditemukan")
	}
	userID := c.Locals("user_id").(string)
	userRole, _ := c.Locals("userRole").(string)

	if userRole == userModel.RoleStudent {
		if studentID.String() != userID {
			return helper.Error(c, fiber.StatusForbidden, "Tidak boleh melihat nilai murid lain")
		}
		var grades []dto.StudentGradeItem
		if err := ctrl.DB.Raw(`
			SELECT g.id, g.lesson_id, g.student_id, g.grade, g.feedback, g.created_at,
			       l.title AS lesson_title, l.date AS lesson_date, u.name AS teacher_name
			FROM grades g
			JOIN lessons l ON l.id = g.lesson_id
			JOIN users u ON u.id = l.teacher_id
			WHERE g.student_id = ?
			ORDER BY g.created_at DESC
		`, studentID).Scan(&grades).Error; err != nil {
			log.Printf("[ERROR] nilai murid: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
		}
		return c.JSON(grades)
	}

	var grades []dto.StudentGradeItem
	if err := ctrl.DB.Raw(`
		SELECT g.id, g.lesson_id, g.student_id, g.grade, g.feedback, g.created_at,
		       l.title AS lesson_title, l.date AS lesson_date
		FROM grades g
		JOIN lessons l ON l.id = g.lesson_id
		WHERE g.student_id = ? AND l.teacher_id = ?
		ORDER BY g.created_at DESC
	`, studentID, userID).Scan(&grades).Error; err != nil {
		log.Printf("[ERROR] nilai murid (guru): %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	return c.JSON(grades)
}

// =======================
// 📄 Semua nilai satu lesson (khusus pemilik lesson)
// =======================
func (ctrl *GradeController) GetLessonGrades(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
	}
	userID := c.Locals("user_id").(string)

	var count int64
	if err := ctrl.DB.Table("lessons").
		Where("id = ? AND teacher_id = ?", lessonID, userID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa pelajaran")
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
	}

	var grades []dto.LessonGradeItem
	if err := ctrl.DB.Raw(`
		SELECT g.id, g.lesson_id, g.student_id, g.grade, g.feedback, g.created_at,
		       u.name AS student_name, u.email AS student_email
		FROM grades g
		JOIN users u ON u.id = g.student_id
		WHERE g.lesson_id = ?
		ORDER BY u.name ASC
	`, lessonID).Scan(&grades).Error; err != nil {
		log.Printf("[ERROR] nilai lesson: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	return c.JSON(grades)
}
