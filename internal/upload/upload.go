// Package upload stores user-submitted images on local disk under
// collision-free names and returns the public URL they are served from.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// urlPrefix is the path the router serves the upload directory from.
const urlPrefix = "/uploads"

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

var (
	// ErrInvalidExtension is returned for file types outside the allowlist.
	ErrInvalidExtension = errors.New("unsupported file extension")
	// ErrTooLarge is returned when the upload exceeds the size cap.
	ErrTooLarge = errors.New("file too large")
)

// Store writes uploads to a local directory.
type Store struct {
	dir      string
	maxBytes int64
}

// NewStore creates the upload directory if needed and returns a store.
func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

// Dir returns the directory uploads are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save validates and persists one upload, returning its public URL. The
// stored name is a fresh UUID plus the original extension so client-chosen
// names never reach the filesystem.
func (s *Store) Save(filename string, size int64, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrInvalidExtension
	}
	if size > s.maxBytes {
		return "", ErrTooLarge
	}

	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	// LimitReader guards against lying Content-Length headers.
	written, err := io.Copy(dst, io.LimitReader(content, s.maxBytes+1))
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	if written > s.maxBytes {
		_ = os.Remove(path)
		return "", ErrTooLarge
	}

	return urlPrefix + "/" + name, nil
}
