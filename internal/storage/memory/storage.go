package memory

import (
	"context"
	"io"
	"sync"

	"eventsphere-api/internal/custom_errors"
)

type FileStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func NewFileStorage() *FileStorage {
	return &FileStorage{files: make(map[string][]byte)}
}

func (s *FileStorage) Save(ctx context.Context, name string, content io.Reader) error {
	data, err := io.ReadAll(content)
	if err != nil {
		return custom_errors.ErrFileStorage
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = data
	return nil
}

func (s *FileStorage) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.files[name]; !exists {
		return custom_errors.ErrFileStorage
	}
	delete(s.files, name)
	return nil
}

// Exists is a test helper.
func (s *FileStorage) Exists(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.files[name]
	return exists
}
