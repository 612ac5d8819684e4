package interfaces

import (
	"context"
	"io"
)

// IFileStore persists uploaded files and returns the storage key.
type IFileStore interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}
