package storage

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"
)

// GCSStore writes objects to a Google Cloud Storage bucket using ambient
// credentials (service account or workload identity).
type GCSStore struct {
	client    *gcs.Client
	projectID string
	bucket    string
}

func NewGCSStore(ctx context.Context, projectID, bucket string) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs: bucket name is required")
	}

	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs: create client: %w", err)
	}

	return &GCSStore{
		client:    client,
		projectID: projectID,
		bucket:    bucket,
	}, nil
}

// Put uploads data under key with the given content type. The returned path
// is the object key within the bucket.
func (s *GCSStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs: write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs: finalize object %s: %w", key, err)
	}

	return key, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
