package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Upload errors, surfaced to users as 400s by the handlers.
var (
	ErrFileTooLarge   = errors.New("uploaded file exceeds the size limit")
	ErrDisallowedType = errors.New("file type is not allowed for this endpoint")
	ErrMissingFile    = errors.New("file is required")
)

// MIME allow-lists per endpoint family.
var (
	PDFOnly     = []string{"application/pdf"}
	PDFOrImages = []string{"application/pdf", "image/png", "image/jpeg", "image/jpg"}
)

// SaveUpload writes an uploaded file into dir under a unique name
// (timestamp + random suffix) so concurrent uploads never collide. It returns
// the stored path, the declared MIME type, and a cleanup func the caller must
// defer so the temp file is removed regardless of processing outcome.
func SaveUpload(header *multipart.FileHeader, dir string, allowed []string, maxBytes int64) (string, string, func(), error) {
	if header == nil {
		return "", "", nil, ErrMissingFile
	}
	if header.Size > maxBytes {
		return "", "", nil, ErrFileTooLarge
	}

	mimeType := header.Header.Get("Content-Type")
	if !mimeAllowed(mimeType, allowed) {
		return "", "", nil, ErrDisallowedType
	}

	src, err := header.Open()
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString(), filepath.Ext(header.Filename))
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", "", nil, fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", "", nil, fmt.Errorf("failed to close upload file: %w", err)
	}

	cleanup := func() { os.Remove(path) }
	return path, mimeType, cleanup, nil
}

func mimeAllowed(mimeType string, allowed []string) bool {
	for _, m := range allowed {
		if mimeType == m {
			return true
		}
	}
	return false
}
