package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	fileModel "tutorku_backend/internals/features/files/file/model"
	"tutorku_backend/internals/features/lessons/lesson/dto"
	"tutorku_backend/internals/features/lessons/lesson/model"
	helper "tutorku_backend/internals/helpers"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pgWriteError memetakan pelanggaran constraint ke 400; sisanya 500.
// Unique violation membawa kode CONFLICT (bukan VALIDATION_ERROR) di envelope.
func pgWriteError(err error, conflictMsg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return helper.NewCodedError(fiber.StatusBadRequest, helper.CodeConflict, conflictMsg)
		case pgForeignKeyViolation:
			return fiber.NewError(fiber.StatusBadRequest, "Referensi tidak dikenal")
		}
	}
	return err
}

// CreateLessonWithStudents membuat lesson plus seluruh enrollment-nya sebagai
// satu unit atomik. Enrollment ditulis sekali sebagai batch multi-row; gagal
// satu berarti seluruh transaksi di-rollback.
func CreateLessonWithStudents(db *gorm.DB, teacherID uuid.UUID, req dto.CreateLessonRequest) (model.LessonModel, error) {
	date, err := dto.ParseLessonDate(req.Date)
	if err != nil {
		return model.LessonModel{}, fiber.NewError(fiber.StatusBadRequest, "Format tanggal tidak dikenali")
	}

	lesson := model.LessonModel{
		TeacherID:    teacherID,
		Title:        req.Title,
		Description:  req.Description,
		Date:         date,
		Duration:     req.Duration,
		HomeworkText: req.HomeworkText,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&lesson).Error; err != nil {
			log.Printf("[ERROR] insert lesson: %v", err)
			return err
		}

		enrollments := make([]model.EnrollmentModel, 0, len(req.StudentIDs))
		for _, sid := range req.StudentIDs {
			enrollments = append(enrollments, model.EnrollmentModel{
				LessonID:  lesson.ID,
				StudentID: sid,
				Status:    model.EnrollmentStatusEnrolled,
			})
		}
		if err := tx.Create(&enrollments).Error; err != nil {
			log.Printf("[ERROR] insert enrollments: %v", err)
			return pgWriteError(err, "Ada murid duplikat di daftar")
		}
		return nil
	})
	if err != nil {
		return model.LessonModel{}, err
	}
	return lesson, nil
}

// UpdateLessonWithStudents memperbarui lesson milik teacherID.
// Field nil tidak diubah. StudentIDs non-nil memicu re-sync destruktif:
// semua enrollment lama dihapus lalu diganti (enrolled_at dan status ikut
// ter-reset); slice kosong berarti lesson jadi tanpa murid.
func UpdateLessonWithStudents(db *gorm.DB, lessonID, teacherID uuid.UUID, req dto.UpdateLessonRequest) error {
	var date *time.Time
	if req.Date != nil {
		parsed, err := dto.ParseLessonDate(*req.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal tidak dikenali")
		}
		date = parsed
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// Ownership: tidak ada beda antara "bukan milikmu" dan "tidak ada".
		var lesson model.LessonModel
		if err := tx.Select("id").
			Where("id = ? AND teacher_id = ?", lessonID, teacherID).
			First(&lesson).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
			}
			return err
		}

		updates := map[string]interface{}{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if date != nil {
			updates["date"] = *date
		}
		if req.Duration != nil {
			updates["duration"] = *req.Duration
		}
		if req.HomeworkText != nil {
			updates["homework_text"] = *req.HomeworkText
		}
		if len(updates) > 0 {
			if err := tx.Model(&model.LessonModel{}).
				Where("id = ?", lessonID).
				Updates(updates).Error; err != nil {
				log.Printf("[ERROR] update lesson: %v", err)
				return err
			}
		}

		if req.StudentIDs == nil {
			return nil
		}

		if err := tx.Where("lesson_id = ?", lessonID).
			Delete(&model.EnrollmentModel{}).Error; err != nil {
			log.Printf("[ERROR] clear enrollments: %v", err)
			return err
		}
		if len(*req.StudentIDs) == 0 {
			return nil
		}

		enrollments := make([]model.EnrollmentModel, 0, len(*req.StudentIDs))
		for _, sid := range *req.StudentIDs {
			enrollments = append(enrollments, model.EnrollmentModel{
				LessonID:  lessonID,
				StudentID: sid,
				Status:    model.EnrollmentStatusEnrolled,
			})
		}
		if err := tx.Create(&enrollments).Error; err != nil {
			log.Printf("[ERROR] replace enrollments: %v", err)
			return pgWriteError(err, "Ada murid duplikat di daftar")
		}
		return nil
	})
}

// DeleteLessonCascade menghapus lesson beserta grades, enrollments, dan row
// files-nya dalam satu transaksi (cascade manual lengkap). Nama file yang
// tersimpan dikembalikan supaya caller bisa unlink dari disk best-effort.
func DeleteLessonCascade(db *gorm.DB, lessonID, teacherID uuid.UUID) ([]string, error) {
	var filenames []string

	err := db.Transaction(func(tx *gorm.DB) error {
		var lesson model.LessonModel
		if err := tx.Select("id").
			Where("id = ? AND teacher_id = ?", lessonID, teacherID).
			First(&lesson).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
			}
			return err
		}

		if err := tx.Model(&fileModel.FileModel{}).
			Where("lesson_id = ?", lessonID).
			Pluck("filename", &filenames).Error; err != nil {
			return err
		}

		if err := tx.Where("lesson_id = ?", lessonID).Delete(&model.GradeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_id = ?", lessonID).Delete(&model.EnrollmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_id = ?", lessonID).Delete(&fileModel.FileModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", lessonID).Delete(&model.LessonModel{}).Error
	})
	if err != nil {
		return nil, err
	}
	return filenames, nil
}

// UpsertGrade menulis nilai untuk (lesson, murid) sebagai satu upsert atomik
// di atas unique constraint — dua submit bersamaan tidak bisa menghasilkan
// duplicate-key.
func UpsertGrade(db *gorm.DB, lessonID, teacherID uuid.UUID, req dto.GradeRequest) (model.GradeModel, error) {
	// Lesson harus milik guru ini.
	var lesson model.LessonModel
	if err := db.Select("id").
		Where("id = ? AND teacher_id = ?", lessonID, teacherID).
		First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.GradeModel{}, fiber.NewError(fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak")
		}
		return model.GradeModel{}, err
	}

	// Murid harus terdaftar dulu.
	var enrollment model.EnrollmentModel
	if err := db.Select("id").
		Where("lesson_id = ? AND student_id = ?", lessonID, req.StudentID).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.GradeModel{}, fiber.NewError(fiber.StatusNotFound, "Murid tidak terdaftar di pelajaran ini")
		}
		return model.GradeModel{}, err
	}

	grade := model.GradeModel{
		LessonID:  lessonID,
		StudentID: req.StudentID,
		Grade:     req.Grade,
		Feedback:  req.Feedback,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "lesson_id"}, {Name: "student_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"grade":      req.Grade,
			"feedback":   req.Feedback,
			"created_at": gorm.Expr("now()"),
		}),
	}).Create(&grade).Error; err != nil {
		log.Printf("[ERROR] upsert grade: %v", err)
		return model.GradeModel{}, err
	}

	// Baca balik supaya id/timestamp yang dikembalikan pasti milik row final.
	var saved model.GradeModel
	if err := db.Where("lesson_id = ? AND student_id = ?", lessonID, req.StudentID).
		First(&saved).Error; err != nil {
		return model.GradeModel{}, err
	}
	return saved, nil
}
