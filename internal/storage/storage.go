package storage

import (
	"context"
	"fmt"
)

// Store is the minimal write capability the harvester needs from object
// storage: put a blob under a key with a declared content type and get back
// the stored path. Objects are written once and never updated or deleted.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Close() error
}

type Config struct {
	Backend   string
	ProjectID string
	Bucket    string
	BasePath  string
}

// Open selects and constructs a storage backend from config.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "gcs", "":
		return NewGCSStore(ctx, cfg.ProjectID, cfg.Bucket)
	case "file":
		return NewFileStore(cfg.BasePath)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s (supported: gcs, file, memory)", cfg.Backend)
	}
}
