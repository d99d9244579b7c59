// Package blob stores opaque binary resources (images) in an
// S3-compatible backend, keyed by generated storage keys.
package blob

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
)

// Store is the blob storage used for profile and post images.
type Store interface {
	// Save uploads the content under the given key.
	Save(ctx context.Context, key string, contentType string, body io.Reader) error

	// Open streams the content back. The caller must close the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// NewStorageKey generates a date-partitioned random key, keeping the
// original file extension so Content-Type sniffing stays cheap.
func NewStorageKey(filename string) string {
	d := time.Now()
	return fmt.Sprintf("images/%d/%d/%d/%v%s", d.Year(), d.Month(), d.Day(), uuid.New(), path.Ext(filename))
}
