package service

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"paintpro-backend/internal/domains/upload"
	"paintpro-backend/internal/shared/apperror"
)

// MaxUploadSize caps image uploads at 2MB.
const MaxUploadSize = 2 << 20

const keyPrefix = "blog-images/"

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type uploadService struct {
	uploader upload.Uploader
}

func NewUploadService(uploader upload.Uploader) upload.Service {
	return &uploadService{uploader: uploader}
}

// Upload sniffs the content type from the file bytes, never trusting the
// client-supplied filename or header.
func (s *uploadService) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if s.uploader == nil {
		return "", apperror.Persistence("object storage is not configured", nil)
	}

	if len(data) == 0 {
		return "", apperror.Validation("uploaded file is empty")
	}
	if len(data) > MaxUploadSize {
		return "", apperror.Validation("uploaded file exceeds the 2MB limit")
	}

	contentType := http.DetectContentType(data)
	ext, ok := allowedTypes[contentType]
	if !ok {
		return "", apperror.Validation("unsupported file type: only jpeg, png, webp, and gif images are accepted")
	}

	if orig := strings.ToLower(filepath.Ext(filename)); orig == ".jpeg" && ext == ".jpg" {
		ext = ".jpeg"
	}

	key := keyPrefix + uuid.NewString() + ext
	url, err := s.uploader.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", apperror.Persistence("failed to store uploaded file", err)
	}

	return url, nil
}
