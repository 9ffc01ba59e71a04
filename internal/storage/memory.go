package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps objects in a map. Used as the in-memory fake in tests
// and as the "memory" backend for throwaway runs.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

type memoryObject struct {
	data        []byte
	contentType string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string]memoryObject),
	}
}

func (s *MemoryStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	s.objects[key] = memoryObject{data: cp, contentType: contentType}

	return key, nil
}

// Object returns the stored bytes and content type for key.
func (s *MemoryStore) Object(key string) ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return nil, "", fmt.Errorf("object not found: %s", key)
	}
	return obj.data, obj.contentType, nil
}

// Len returns the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func (s *MemoryStore) Close() error {
	return nil
}
