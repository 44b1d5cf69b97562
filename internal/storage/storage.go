package storage

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"
)

// AferoStore implements Store on top of an afero filesystem. Production code
// hands it a base-path filesystem over the OS; tests use an in-memory one.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// Save writes the content of the reader to name, replacing any existing file.
// A failed copy may leave a truncated file behind.
func (s *AferoStore) Save(ctx context.Context, name string, reader io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	f, err := s.fs.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(f, reader)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return n, err
}

// Open opens name for reading.
func (s *AferoStore) Open(ctx context.Context, name string) (afero.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fs.OpenFile(name, os.O_RDONLY, 0)
}

// Exists reports whether a regular file is stored under name.
func (s *AferoStore) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	info, err := s.fs.Stat(name)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// Delete removes name. Removing a missing file is not an error.
func (s *AferoStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.fs.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
