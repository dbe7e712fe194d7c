package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/chats/chat/dto"
	"tutorku_backend/internals/features/chats/chat/model"
	userModel "tutorku_backend/internals/features/users/auth/model"
	helper "tutorku_backend/internals/helpers"
)

var validateChat = validator.New()

const pgForeignKeyViolation = "23503"

type ChatController struct {
	DB *gorm.DB
}

func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{DB: db}
}

// =======================
// 📄 Daftar chat milik requester (scope per role)
// =======================
func (ctrl *ChatController) GetChats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	userRole, _ := c.Locals("userRole").(string)

	if userRole == userModel.RoleTeacher {
		var chats []dto.TeacherChatItem
		if err := ctrl.DB.Raw(`
			SELECT c.id, c.title, c.created_at, u.name AS student_name, u.id AS student_id
			FROM chats c
			JOIN users u ON c.student_id = u.id
			WHERE c.teacher_id = ?
			ORDER BY c.created_at DESC
		`, userID).Scan(&chats).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar chat")
		}
		return c.JSON(chats)
	}

	var chats []dto.StudentChatItem
	if err := ctrl.DB.Raw(`
		SELECT c.id, c.title, c.created_at, u.name AS teacher_name, u.id AS teacher_id
		FROM chats c
		JOIN users u ON c.teacher_id = u.id
		WHERE c.student_id = ?
		ORDER BY c.created_at DESC
	`, userID).Scan(&chats).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar chat")
	}
	return c.JSON(chats)
}

// =======================
// ➕ Buat chat baru
// =======================
func (ctrl *ChatController) CreateChat(c *fiber.Ctx) error {
	var req dto.CreateChatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validateChat.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "Format user ID tidak valid")
	}
	userRole, _ := c.Locals("userRole").(string)

	// Role requester menentukan sisi mana yang dia tempati.
	chat := model.ChatModel{Title: req.Title}
	if userRole == userModel.RoleTeacher {
		chat.TeacherID = userID
		chat.StudentID = req.ParticipantID
	} else {
		chat.TeacherID = req.ParticipantID
		chat.StudentID = userID
	}

	if err := ctrl.DB.Create(&chat).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return helper.Error(c, fiber.StatusBadRequest, "Partisipan tidak dikenal")
		}
		log.Printf("[ERROR] create chat: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat chat")
	}

	return c.Status(fiber.StatusCreated).JSON(chat)
}

// =======================
// 🔍 Detail chat (404 untuk bukan-partisipan maupun tidak-ada)
// =======================
func (ctrl *ChatController) GetChat(c *fiber.Ctx) error {
	chatID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// ID yang bukan UUID diperlakukan sama dengan row yang tidak ada.
		return helper.Error(c, fiber.StatusNotFound, "Chat tidak ditemukan atau akses ditolak")
	}
	userID := c.Locals("user_id").(string)

	var chat model.ChatModel
	err = ctrl.DB.
		Where("id = ? AND (teacher_id = ? OR student_id = ?)", chatID, userID, userID).
		First(&chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Chat tidak ditemukan atau akses ditolak")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil chat")
	}

	return c.JSON(chat)
}

// =======================
// 🗑️ Hapus chat
// =======================
func (ctrl *ChatController) DeleteChat(c *fiber.Ctx) error {
	chatID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Chat tidak ditemukan atau akses ditolak")
	}
	userID := c.Locals("user_id").(string)

	res := ctrl.DB.
		Where("id = ? AND (teacher_id = ? OR student_id = ?)", chatID, userID, userID).
		Delete(&model.ChatModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus chat")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Chat tidak ditemukan atau akses ditolak")
	}

	return c.JSON(fiber.Map{"message": "Chat berhasil dihapus"})
}
