package service

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MaxFileSize: 10 MiB per lampiran.
const MaxFileSize = 10 << 20

var (
	ErrFileTooLarge = errors.New("ukuran file melebihi batas")
	ErrNotPDF       = errors.New("hanya file PDF yang diterima")
)

// ValidateUpload memeriksa ukuran dan tipe sebelum ada byte yang ditulis.
// Tipe dicek dari Content-Type part dan ekstensi; keduanya harus PDF.
func ValidateUpload(fh *multipart.FileHeader) error {
	if fh.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType != "" && contentType != "application/pdf" {
		return ErrNotPDF
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return ErrNotPDF
	}
	return nil
}

// StoredName menghasilkan nama acak di disk; nama asli hanya disimpan di DB.
func StoredName() string {
	return uuid.NewString() + ".pdf"
}

// EnsureUploadDir membuat direktori upload kalau belum ada.
func EnsureUploadDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// SaveUpload menulis part multipart ke disk dengan nama yang sudah ditentukan.
func SaveUpload(c *fiber.Ctx, fh *multipart.FileHeader, dir, storedName string) error {
	if err := EnsureUploadDir(dir); err != nil {
		return err
	}
	return c.SaveFile(fh, filepath.Join(dir, storedName))
}

// RemoveStored menghapus file dari disk; file yang sudah hilang bukan error.
func RemoveStored(dir, storedName string) error {
	err := os.Remove(filepath.Join(dir, storedName))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
