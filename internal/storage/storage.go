package storage

import (
	"context"
	"io"
	"time"
)

// MaxUploadSize is the hard input-size limit for avatar uploads, enforced
// by the caller before any bytes reach the storage provider.
const MaxUploadSize = 2 << 20 // 2 MB

// Default expiry duration for presigned download URLs.
const DefaultPresignedURLExpiry = 24 * time.Hour

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// Upload stores an object under the given key and returns a URL the
	// object can be retrieved from.
	Upload(ctx context.Context, objectKey, contentType string, body io.Reader, size int64) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
