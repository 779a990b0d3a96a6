package upload

import "context"

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type Service interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}
