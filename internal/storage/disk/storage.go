package disk

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"eventsphere-api/internal/custom_errors"
	"eventsphere-api/internal/logger"
)

// FileStorage stores uploads in a single directory. Names are generated by
// the caller and must not contain path separators.
type FileStorage struct {
	log *logger.Logger
	dir string
}

func NewFileStorage(dir string, log *logger.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating uploads directory: %w", err)
	}
	return &FileStorage{dir: dir, log: log}, nil
}

func (s *FileStorage) Save(ctx context.Context, name string, content io.Reader) error {
	path := filepath.Join(s.dir, filepath.Base(name))

	file, err := os.Create(path)
	if err != nil {
		s.log.Error("Error creating stored file", slog.String("name", name), slog.String("error", err.Error()))
		return custom_errors.ErrFileStorage
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.log.Warn("Error closing stored file", slog.String("name", name), slog.String("error", closeErr.Error()))
		}
	}()

	if _, err := io.Copy(file, content); err != nil {
		s.log.Error("Error writing stored file", slog.String("name", name), slog.String("error", err.Error()))
		return custom_errors.ErrFileStorage
	}

	return nil
}

func (s *FileStorage) Delete(ctx context.Context, name string) error {
	path := filepath.Join(s.dir, filepath.Base(name))

	if err := os.Remove(path); err != nil {
		s.log.Error("Error deleting stored file", slog.String("name", name), slog.String("error", err.Error()))
		return custom_errors.ErrFileStorage
	}
	return nil
}
