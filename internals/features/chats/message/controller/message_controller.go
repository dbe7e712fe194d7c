package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chatModel "tutorku_backend/internals/features/chats/chat/model"
	"tutorku_backend/internals/features/chats/message/dto"
	"tutorku_backend/internals/features/chats/message/model"
	userModel "tutorku_backend/internals/features/users/auth/model"
	helper "tutorku_backend/internals/helpers"
	"tutorku_backend/internals/realtime"
)

var validateMessage = validator.New()

type MessageController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewMessageController(db *gorm.DB, hub *realtime.Hub) *MessageController {
	return &MessageController{DB: db, Hub: hub}
}

// isChatMember: requester harus teacher_id atau student_id chat tersebut.
func (ctrl *MessageController) isChatMember(chatID uuid.UUID, userID string) (bool, error) {
	var chat chatModel.ChatModel
	err := ctrl.DB.Select("id").
		Where("id = ? AND (teacher_id = ? OR student_id = ?)", chatID, userID, userID).
		First(&chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// =======================
// 📄 Pesan sebuah chat (ASC, paginated)
// =======================
func (ctrl *MessageController) GetMessages(c *fiber.Ctx) error {
	chatID, err := uuid.Parse(c.Params("chatId"))
	if err != nil {
		return helper.ErrorWithCode(c, fiber.StatusForbidden, helper.CodeForbidden, "Akses ditolak")
	}
	userID := c.Locals("user_id").(string)

	member, err := ctrl.isChatMember(chatID, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	if !member {
		return helper.ErrorWithCode(c, fiber.StatusForbidden, helper.CodeForbidden, "Akses ditolak")
	}

	paging := helper.ResolvePaging(c, 100, 500)

	var messages []dto.MessageItem
	if err := ctrl.DB.Raw(`
		SELECT m.id, m.chat_id, m.sender_id, m.content, m.created_at, u.name AS sender_name
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE m.chat_id = ?
		ORDER BY m.created_at ASC
		LIMIT ? OFFSET ?
	`, chatID, paging.Limit, paging.Offset).Scan(&messages).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	return c.JSON(messages)
}

// =======================
// ➕ Kirim pesan (lalu relay ke room chat_<id>)
// =======================
func (ctrl *MessageController) SendMessage(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validateMessage.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID := c.Locals("user_id").(string)

	member, err := ctrl.isChatMember(req.ChatID, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
	if !member {
		return helper.ErrorWithCode(c, fiber.StatusForbidden, helper.CodeForbidden, "Akses ditolak")
	}

	senderID, err := uuid.Parse(userID)
	if err != nil {
		return helper.ErrorWithCode(c, fiber.StatusUnauthorized, helper.CodeAuth, "Format user ID tidak valid")
	}

	msg := model.MessageModel{
		ChatID:   req.ChatID,
		SenderID: senderID,
		Content:  req.Content,
	}
	if err := ctrl.DB.Create(&msg).Error; err != nil {
		log.Printf("[ERROR] insert message: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengirim pesan")
	}

	var sender userModel.UserModel
	if err := ctrl.DB.Select("name").First(&sender, "id = ?", senderID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	item := dto.MessageItem{
		ID:         msg.ID,
		ChatID:     msg.ChatID,
		SenderID:   msg.SenderID,
		SenderName: sender.Name,
		Content:    msg.Content,
		CreatedAt:  msg.CreatedAt,
	}

	// Fire-and-forget: kegagalan relay tidak mempengaruhi response HTTP.
	ctrl.Hub.Publish(realtime.ChatRoom(req.ChatID.String()), "new_message", item)

	return c.Status(fiber.StatusCreated).JSON(item)
}

// =======================
// 🗑️ Hapus pesan (hanya pengirim)
// =======================
func (ctrl *MessageController) DeleteMessage(c *fiber.Ctx) error {
	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pesan tidak ditemukan atau akses ditolak")
	}
	userID := c.Locals("user_id").(string)

	res := ctrl.DB.
		Where("id = ? AND sender_id = ?", messageID, userID).
		Delete(&model.MessageModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus pesan")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Pesan tidak ditemukan atau akses ditolak")
	}

	return c.JSON(fiber.Map{"message": "Pesan berhasil dihapus"})
}
