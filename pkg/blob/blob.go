// Package blob stores uploaded files. Keys follow the upload layout used by
// the admin interface: "{uuid}/{original filename}", served back under
// /uploads/{uuid}/{original filename}.
//
// Two backends are provided: Disk for a local uploads directory and S3 for
// S3-compatible object storage. Both detect content types from magic bytes
// rather than trusting the filename extension.
package blob

import (
	"context"
	"io"
	"strings"
)

// Storage is the file storage contract consumed by the form decoder and the
// upload-serving handler.
type Storage interface {
	// Put streams data to storage under the given key.
	Put(ctx context.Context, key string, r io.Reader, size int64) (*FileInfo, error)

	// Get retrieves a stored file. The caller closes the returned reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL path for a key.
	URL(key string) string
}

// FileInfo describes a stored file.
type FileInfo struct {
	Key         string
	ContentType string
	Size        int64
}

// validateKey rejects keys that could escape the storage root. Keys are
// produced from UUIDs and checked filenames, so a failure here means a bug
// or a hostile caller.
func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return ErrInvalidKey
	}
	for part := range strings.SplitSeq(key, "/") {
		if part == "" || part == "." || part == ".." {
			return ErrInvalidKey
		}
	}
	return nil
}
