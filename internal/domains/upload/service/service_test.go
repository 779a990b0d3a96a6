package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paintpro-backend/internal/shared/apperror"
)

type fakeUploader struct {
	lastKey  string
	lastType string
	err      error
}

func (f *fakeUploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastKey = key
	f.lastType = contentType
	return "http://localhost:9000/paintpro/" + key, nil
}

// pngBytes builds a blob that sniffs as image/png.
func pngBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	return data
}

func bmpBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte{'B', 'M'})
	return data
}

func TestUploadAcceptsPNGUnderLimit(t *testing.T) {
	fake := &fakeUploader{}
	svc := NewUploadService(fake)

	url, err := svc.Upload(context.Background(), "photo.png", pngBytes(1<<20))
	require.NoError(t, err)

	assert.Contains(t, url, "blog-images/")
	assert.True(t, strings.HasPrefix(fake.lastKey, "blog-images/"))
	assert.True(t, strings.HasSuffix(fake.lastKey, ".png"))
	assert.Equal(t, "image/png", fake.lastType)
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	svc := NewUploadService(&fakeUploader{})

	_, err := svc.Upload(context.Background(), "image.bmp", bmpBytes(512))
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := NewUploadService(&fakeUploader{})

	_, err := svc.Upload(context.Background(), "big.png", pngBytes(3<<20))
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	svc := NewUploadService(&fakeUploader{})

	_, err := svc.Upload(context.Background(), "empty.png", nil)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestUploadWithoutUploaderIsPersistenceError(t *testing.T) {
	svc := NewUploadService(nil)

	_, err := svc.Upload(context.Background(), "photo.png", pngBytes(1024))
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindPersistence, appErr.Kind)
}

func TestUploadPropagatesStoreFailure(t *testing.T) {
	svc := NewUploadService(&fakeUploader{err: errors.New("connection refused")})

	_, err := svc.Upload(context.Background(), "photo.png", pngBytes(1024))
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindPersistence, appErr.Kind)
}
