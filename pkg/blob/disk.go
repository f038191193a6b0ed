package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Disk stores files under a local uploads root, one directory per upload id.
type Disk struct {
	root      string
	urlPrefix string
}

// NewDisk creates a Disk storage rooted at dir. The directory is created if
// it does not exist.
func NewDisk(dir string) (*Disk, error) {
	if dir == "" {
		return nil, ErrInvalidConfig
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blob: create uploads root: %w", err)
	}
	return &Disk{root: dir, urlPrefix: "/uploads/"}, nil
}

// Put streams the reader into {root}/{key}, creating parent directories.
func (d *Disk) Put(ctx context.Context, key string, r io.Reader, size int64) (*FileInfo, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contentType, body, err := detectMIME(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	path := filepath.Join(d.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	written, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if size >= 0 && written != size {
		os.Remove(path)
		return nil, fmt.Errorf("%w: short write: %d of %d bytes", ErrUploadFailed, written, size)
	}

	return &FileInfo{Key: key, ContentType: contentType, Size: written}, nil
}

// Get opens {root}/{key} for reading.
func (d *Disk) Get(_ context.Context, key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(d.root, filepath.FromSlash(key)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Delete removes the file and, when it becomes empty, its upload directory.
func (d *Disk) Delete(_ context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	path := filepath.Join(d.root, filepath.FromSlash(key))
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	// Best effort: prune the per-upload directory.
	_ = os.Remove(filepath.Dir(path))
	return nil
}

// URL returns the public path for a key.
func (d *Disk) URL(key string) string {
	return d.urlPrefix + key
}
