package storage

import (
	"context"
	"io"
)

// FileStorage is a flat namespace of stored binary assets addressed by name.
//
//go:generate mockery --name FileStorage --dir . --output ../../mocks/storage --outpkg storage_mock --filename FileStorage.go
type FileStorage interface {
	Save(ctx context.Context, name string, content io.Reader) error
	Delete(ctx context.Context, name string) error
}
