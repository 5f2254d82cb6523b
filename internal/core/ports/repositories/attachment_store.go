package repositories

import (
	"context"
	"io"
	"time"
)

// AttachmentStore stores attachment bytes under an object key.
type AttachmentStore interface {
	PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	DeleteObject(ctx context.Context, key string) error
	GenerateDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
