package controller

import (
	"log"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/configs"
	"tutorku_backend/internals/features/lessons/lesson/dto"
	"tutorku_backend/internals/features/lessons/lesson/model"
	"tutorku_backend/internals/features/lessons/lesson/service"
	userModel "tutorku_backend/internals/features/users/auth/model"
	helper "tutorku_backend/internals/helpers"
)

var validateLesson = validator.New()

type LessonController struct {
	DB *gorm.DB
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db}
}

// =======================
// 📄 Daftar lesson (scope per role)
// =======================
func (ctrl *LessonController) GetLessons(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	userRole, _ := c.Locals("userRole").(string)

	if userRole == userModel.RoleTeacher {
		var lessons []dto.TeacherLessonItem
		if err := ctrl.DB.Raw(`
			SELECT l.id, l.teacher_id, l.title, l.description, l.date, l.duration,
			       l.homework_text, l.created_at,
			       COUNT(e.id)::int AS enrolled_students,
			       COALESCE(array_agg(e.student_id::text) FILTER (WHERE e.id IS NOT NULL), '{}') AS student_ids
			FROM lessons l
			LEFT JOIN enrollments e ON e.lesson_id = l.id
			WHERE l.teacher_id = ?
			GROUP BY l.id
			ORDER BY l.date ASC NULLS LAST, l.created_at DESC
		`, userID).Scan(&lessons).Error; err != nil {
			log.Printf("[ERROR] list lessons (teacher): %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pelajaran")
		}
		return c.JSON(lessons)
	}

	var lessons []dto.StudentLessonItem
	if err := ctrl.DB.Raw(`
		SELECT l.id, l.teacher_id, l.title, l.description, l.date, l.duration,
		       l.homework_text, l.created_at,
		       u.name AS teacher_name, e.status AS enrollment_status
		FROM lessons l
		JOIN enrollments e ON e.lesson_id = l.id AND e.student_id = ?
		JOIN users u ON u.id = l.teacher_id
		ORDER BY l.date ASC NULLS LAST, l.created_at DESC
	`, userID).Scan(&lessons).Error; err != nil {
		log.Printf("[ERROR] list lessons (student): %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pelajaran")
	}
	return c.JSON(lessons)
}

// =======================
// ➕ Buat lesson + enrollment (atomik)
// =======================
func (ctrl *LessonController) CreateLesson(c *fiber.Ctx) error {
	var req dto.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validateLesson.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	teacherID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "Format user ID tidak valid")
	}

	lesson, err := service.CreateLessonWithStudents(ctrl.DB, teacherID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToCreatedLessonResponse(lesson, req.StudentIDs))
}

// =======================
// 🔍 Detail lesson (variasi per role)
// =======================
func (ctrl *LessonController) GetLesson(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
	}
	userID := c.Locals("user_id").(string)
	userRole, _ := c.Locals("userRole").(string)

	if userRole == userModel.RoleTeacher {
		var detail dto.TeacherLessonDetail
		res := ctrl.DB.Raw(`
			SELECT l.id, l.teacher_id, l.title, l.description, l.date, l.duration,
			       l.homework_text, l.created_at,
			       COUNT(e.id)::int AS enrolled_students,
			       COALESCE(array_agg(e.student_id::text) FILTER (WHERE e.id IS NOT NULL), '{}') AS student_ids
			FROM lessons l
			LEFT JOIN enrollments e ON e.lesson_id = l.id
			WHERE l.id = ? AND l.teacher_id = ?
			GROUP BY l.id
		`, lessonID, userID).Scan(&detail.TeacherLessonItem)
		if res.Error != nil {
			log.Printf("[ERROR] lesson detail (teacher): %v", res.Error)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pelajaran")
		}
		if res.RowsAffected == 0 {
			return helper.Error(c, fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
		}

		detail.Students = []dto.LessonStudentItem{}
		if err := ctrl.DB.Raw(`
			SELECT u.id, u.name, u.email, e.status, g.grade, g.feedback
			FROM enrollments e
			JOIN users u ON u.id = e.student_id
			LEFT JOIN grades g ON g.lesson_id = e.lesson_id AND g.student_id = e.student_id
			WHERE e.lesson_id = ?
			ORDER BY u.name ASC
		`, lessonID).Scan(&detail.Students).Error; err != nil {
			log.Printf("[ERROR] lesson students: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil peserta pelajaran")
		}

		return c.JSON(detail)
	}

	// Murid hanya bisa melihat lesson yang dia ikuti; lainnya 404.
	var item dto.StudentLessonItem
	res := ctrl.DB.Raw(`
		SELECT l.id, l.teacher_id, l.title, l.description, l.date, l.duration,
		       l.homework_text, l.created_at,
		       u.name AS teacher_name, e.status AS enrollment_status
		FROM lessons l
		JOIN enrollments e ON e.lesson_id = l.id AND e.student_id = ?
		JOIN users u ON u.id = l.teacher_id
		WHERE l.id = ?
	`, userID, lessonID).Scan(&item)
	if res.Error != nil {
		log.Printf("[ERROR] lesson detail (student): %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pelajaran")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
	}

	return c.JSON(item)
}

// =======================
// ✏️ Update lesson (+ re-sync enrollment bila studentIds dikirim)
// =======================
func (ctrl *LessonController) UpdateLesson(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
	}
	teacherID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "Format user ID tidak valid")
	}

	var req dto.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	if err := service.UpdateLessonWithStudents(ctrl.DB, lessonID, teacherID, req); err != nil {
		return helper.FromFiberError(c, err)
	}

	var lesson model.LessonModel
	if err := ctrl.DB.First(&lesson, "id = ?", lessonID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca pelajaran")
	}
	return c.JSON(lesson)
}

// =======================
// 📚 Set teks PR (homework)
// =======================
func (ctrl *LessonController) UpdateHomework(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
	}
	userID := c.Locals("user_id").(string)

	var req dto.HomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validateLesson.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.LessonModel{}).
		Where("id = ? AND teacher_id = ?", lessonID, userID).
		Update("homework_text", req.HomeworkText)
	if res.Error != nil {
		log.Printf("[ERROR] update homework: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan PR")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
	}

	return c.JSON(fiber.Map{"message": "PR berhasil disimpan"})
}

// =======================
// 🗑️ Hapus lesson (cascade: grades, enrollments, files)
// =======================
func (ctrl *LessonController) DeleteLesson(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
	}
	teacherID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "Format user ID tidak valid")
	}

	filenames, err := service.DeleteLessonCascade(ctrl.DB, lessonID, teacherID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Unlink dari disk best-effort; row DB-nya sudah hilang.
	for _, name := range filenames {
		if err := os.Remove(filepath.Join(configs.UploadsDir, name)); err != nil && !os.IsNotExist(err) {
			log.Printf("[WARN] gagal hapus file %s: %v", name, err)
		}
	}

	return c.JSON(fiber.Map{"message": "Pelajaran berhasil dihapus"})
}

// =======================
// 👥 Roster semua murid (untuk guru memilih peserta)
// =======================
func (ctrl *LessonController) GetAllStudents(c *fiber.Ctx) error {
	var students []dto.StudentRosterItem
	if err := ctrl.DB.Raw(`
		SELECT id, name, email FROM users
		WHERE role = ?
		ORDER BY name ASC
	`, userModel.RoleStudent).Scan(&students).Error; err != nil {
		log.Printf("[ERROR] roster murid: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar murid")
	}
	return c.JSON(students)
}
