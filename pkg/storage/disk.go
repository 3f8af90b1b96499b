// Package storage persists uploaded part images. Two drivers are
// available: the local filesystem (default) and S3-compatible object
// storage (AWS S3, MinIO, R2, Spaces).
package storage

import (
	"context"
	"io"
)

// Disk is the media driver interface.
type Disk interface {
	// Put writes from r to path, creating parents as needed.
	Put(ctx context.Context, path string, r io.Reader) error

	// Open returns a ReadCloser for the file. Caller must close it.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists reports whether a file exists at path.
	Exists(ctx context.Context, path string) bool

	// Delete removes a file. Removing a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for path.
	URL(path string) string
}
