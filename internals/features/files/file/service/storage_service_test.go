package service

import (
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func header(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{
		Filename: name,
		Header:   h,
		Size:     size,
	}
}

func TestValidateUpload(t *testing.T) {
	cases := []struct {
		name string
		fh   *multipart.FileHeader
		want error
	}{
		{"pdf valid", header("materi.pdf", "application/pdf", 1024), nil},
		{"pdf tanpa content-type", header("materi.pdf", "", 1024), nil},
		{"ekstensi kapital", header("MATERI.PDF", "application/pdf", 1024), nil},
		{"terlalu besar", header("materi.pdf", "application/pdf", MaxFileSize+1), ErrFileTooLarge},
		{"pas di batas", header("materi.pdf", "application/pdf", MaxFileSize), nil},
		{"bukan pdf", header("foto.png", "image/png", 1024), ErrNotPDF},
		{"content-type bohong", header("materi.pdf", "application/zip", 1024), ErrNotPDF},
		{"ekstensi bohong", header("materi.exe", "application/pdf", 1024), ErrNotPDF},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateUpload(tc.fh); got != tc.want {
				t.Errorf("ValidateUpload = %v, mau %v", got, tc.want)
			}
		})
	}
}

func TestStoredName(t *testing.T) {
	a := StoredName()
	b := StoredName()
	if !strings.HasSuffix(a, ".pdf") {
		t.Errorf("nama tersimpan tanpa .pdf: %q", a)
	}
	if a == b {
		t.Error("dua nama tersimpan identik")
	}
	if strings.ContainsAny(a, "/\\") {
		t.Errorf("nama tersimpan mengandung separator path: %q", a)
	}
}

func TestEnsureUploadDirAndRemoveStored(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	if err := EnsureUploadDir(dir); err != nil {
		t.Fatalf("EnsureUploadDir: %v", err)
	}
	// Idempotent.
	if err := EnsureUploadDir(dir); err != nil {
		t.Fatalf("EnsureUploadDir kedua: %v", err)
	}

	name := StoredName()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("tulis file: %v", err)
	}
	if err := RemoveStored(dir, name); err != nil {
		t.Fatalf("RemoveStored: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Error("file masih ada setelah RemoveStored")
	}

	// File yang sudah hilang bukan error.
	if err := RemoveStored(dir, name); err != nil {
		t.Errorf("RemoveStored untuk file hilang: %v", err)
	}
}
