package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore writes objects to the local filesystem under a base directory.
// Meant for development and single-instance runs without cloud credentials;
// the content type is accepted for interface parity but not recorded.
type FileStore struct {
	basePath string
}

func NewFileStore(basePath string) (*FileStore, error) {
	if basePath == "" {
		return nil, fmt.Errorf("file store: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("file store: create base path: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

func (s *FileStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("file store: create object dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("file store: write object %s: %w", key, err)
	}

	return key, nil
}

func (s *FileStore) Close() error {
	return nil
}
