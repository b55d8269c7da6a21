package repository

import (
	"context"
	"io"
)

// ObjectStorage hosts media objects under keys such as "videos/{uuid}.mp4".
type ObjectStorage interface {
	// Upload stores size bytes from reader. A negative size streams the
	// object in parts.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// Delete removes an object. It returns ErrObjectNotFound when key is absent.
	Delete(ctx context.Context, key string) error

	// URL is the public address the object is served from.
	URL(key string) string
}
