package storage

import (
	"context"
	"io"

	"github.com/spf13/afero"
)

// Store defines the interface for a flat file storage backend. Names are
// relative to the backend's root.
type Store interface {
	Save(ctx context.Context, name string, reader io.Reader) (int64, error)
	Open(ctx context.Context, name string) (afero.File, error)
	Exists(ctx context.Context, name string) (bool, error)
	Delete(ctx context.Context, name string) error
}
