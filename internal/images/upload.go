package images

import (
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/spf13/afero"
)

// Upload is the capability Store needs from an incoming file, independent of
// how it arrived.
type Upload interface {
	IsEmpty() bool
	OriginalFilename() string
	Open() (io.ReadCloser, error)
}

// MultipartUpload adapts a multipart form file.
type MultipartUpload struct {
	Header *multipart.FileHeader
}

func (u MultipartUpload) IsEmpty() bool {
	return u.Header == nil || u.Header.Size == 0
}

func (u MultipartUpload) OriginalFilename() string {
	if u.Header == nil {
		return ""
	}
	return u.Header.Filename
}

func (u MultipartUpload) Open() (io.ReadCloser, error) {
	return u.Header.Open()
}

// FileUpload reads an upload from a path on an afero filesystem; the CLI
// uses it with the OS filesystem.
type FileUpload struct {
	fs   afero.Fs
	path string
	size int64
}

// NewFileUpload stats path and returns an Upload for it.
func NewFileUpload(fs afero.Fs, path string) (*FileUpload, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, err
	}
	return &FileUpload{fs: fs, path: path, size: info.Size()}, nil
}

func (u *FileUpload) IsEmpty() bool {
	return u == nil || u.size == 0
}

func (u *FileUpload) OriginalFilename() string {
	return filepath.Base(u.path)
}

func (u *FileUpload) Open() (io.ReadCloser, error) {
	return u.fs.Open(u.path)
}
