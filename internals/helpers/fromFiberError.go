package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// CodedError membawa kode taksonomi eksplisit untuk error yang lahir di
// service layer; status saja tidak cukup membedakan 400 CONFLICT dari
// 400 VALIDATION_ERROR.
type CodedError struct {
	Status  int
	Code    string
	Message string
}

func (e *CodedError) Error() string { return e.Message }

func NewCodedError(status int, code, message string) *CodedError {
	return &CodedError{Status: status, Code: code, Message: message}
}

// FromFiberError mengubah error hasil Transaction (biasanya *fiber.Error
// atau *CodedError) menjadi response JSON konsisten via helper.Error.
// Jika bukan keduanya, fallback ke 500 dengan pesan generik (detail store
// tidak bocor ke caller).
func FromFiberError(c *fiber.Ctx, err error) error {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ErrorWithCode(c, ce.Status, ce.Code, ce.Message)
	}
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return ErrorWithCode(c, fiber.StatusInternalServerError, CodePersistence, "Terjadi kesalahan pada server")
}
