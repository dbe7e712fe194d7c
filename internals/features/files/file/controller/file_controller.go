package controller

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/configs"
	"tutorku_backend/internals/features/files/file/dto"
	"tutorku_backend/internals/features/files/file/model"
	"tutorku_backend/internals/features/files/file/service"
	userModel "tutorku_backend/internals/features/users/auth/model"
	helper "tutorku_backend/internals/helpers"
)

type FileController struct {
	DB *gorm.DB
}

func NewFileController(db *gorm.DB) *FileController {
	return &FileController{DB: db}
}

// canAccessLesson: guru pemilik atau murid yang terdaftar.
// Lesson yang tidak ada dan akses yang ditolak sama-sama false.
func (ctrl *FileController) canAccessLesson(lessonID uuid.UUID, userID, userRole string) (bool, error) {
	var count int64
	if userRole == userModel.RoleTeacher {
		err := ctrl.DB.Table("lessons").
			Where("id = ? AND teacher_id = ?", lessonID, userID).
			Count(&count).Error
		return count > 0, err
	}
	err := ctrl.DB.Table("enrollments").
		Where("lesson_id = ? AND student_id = ?", lessonID, userID).
		Count(&count).Error
	return count > 0, err
}

// =======================
// ⬆️ Upload lampiran PDF ke lesson (khusus pemilik lesson)
// =======================
func (ctrl *FileController) UploadFile(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("lessonId"))
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

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Field file wajib diisi")
	}
	if err := service.ValidateUpload(fh); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	uploaderID, err := uuid.Parse(userID)
	if err != nil {
		return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "Format user ID tidak valid")
	}

	storedName := service.StoredName()
	if err := service.SaveUpload(c, fh, configs.UploadsDir, storedName); err != nil {
		log.Printf("[ERROR] simpan upload: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan file")
	}

	record := model.FileModel{
		LessonID:     lessonID,
		UploadedBy:   uploaderID,
		Filename:     storedName,
		OriginalName: fh.Filename,
		MimeType:     "application/pdf",
		Size:         fh.Size,
	}
	if err := ctrl.DB.Create(&record).Error; err != nil {
		// Row gagal masuk: file di disk jadi yatim, bersihkan langsung.
		_ = service.RemoveStored(configs.UploadsDir, storedName)
		log.Printf("[ERROR] insert file: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan metadata file")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToUploadedFileResponse(record))
}

// =======================
// 📄 Daftar lampiran satu lesson
// =======================
func (ctrl *FileController) GetLessonFiles(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("lessonId"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
	}
	userID := c.Locals("user_id").(string)
	userRole, _ := c.Locals("userRole").(string)

	ok, err := ctrl.canAccessLesson(lessonID, userID, userRole)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa akses")
	}
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
	}

	var files []dto.FileItem
	if err := ctrl.DB.Raw(`
		SELECT f.id, f.lesson_id, f.original_name, f.mime_type, f.size,
		       f.uploaded_by, u.name AS uploader_name, f.created_at
		FROM files f
		JOIN users u ON u.id = f.uploaded_by
		WHERE f.lesson_id = ?
		ORDER BY f.created_at DESC
	`, lessonID).Scan(&files).Error; err != nil {
		log.Printf("[ERROR] daftar file: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar file")
	}
	return c.JSON(files)
}

// =======================
// ⬇️ Download lampiran
// =======================
func (ctrl *FileController) DownloadFile(c *fiber.Ctx) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "File tidak ditemukan atau akses ditolak")
	}
	userID := c.Locals("user_id").(string)
	userRole, _ := c.Locals("userRole").(string)

	var record model.FileModel
	if err := ctrl.DB.First(&record, "id = ?", fileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "File tidak ditemukan atau akses ditolak")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil file")
	}

	ok, err := ctrl.canAccessLesson(record.LessonID, userID, userRole)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa akses")
	}
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "File tidak ditemukan atau akses ditolak")
	}

	// Nama asli dipakai di Content-Disposition, path disk tetap nama acak.
	return c.Download(filepath.Join(configs.UploadsDir, record.Filename), record.OriginalName)
}

// =======================
// 🗑️ Hapus lampiran (khusus pengunggah)
// =======================
func (ctrl *FileController) DeleteFile(c *fiber.Ctx) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "File tidak ditemukan atau akses ditolak")
	}
	userID := c.Locals("user_id").(string)

	var record model.FileModel
	if err := ctrl.DB.
		Where("id = ? AND uploaded_by = ?", fileID, userID).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "File tidak ditemukan atau akses ditolak")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil file")
	}

	if err := ctrl.DB.Delete(&model.FileModel{}, "id = ?", record.ID).Error; err != nil {
		log.Printf("[ERROR] hapus row file: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus file")
	}
	if err := service.RemoveStored(configs.UploadsDir, record.Filename); err != nil {
		// Row sudah hilang; sisa di disk akan disapu scheduler.
		log.Printf("[WARN] gagal hapus file %s dari disk: %v", record.Filename, err)
	}

	return c.JSON(fiber.Map{"message": "File berhasil dihapus"})
}
