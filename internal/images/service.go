package images

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfrund/petimages/internal/domain"
	"github.com/nfrund/petimages/internal/pubsub"
	"github.com/nfrund/petimages/internal/storage"
	"github.com/spf13/afero"
)

// Service manages a flat directory of images stored under generated names.
// It is the only component that touches the storage root.
type Service struct {
	root   string
	store  storage.Store
	events pubsub.Publisher
	logger *slog.Logger
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithPublisher publishes lifecycle events on p.
func WithPublisher(p pubsub.Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.events = p
		}
	}
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService resolves rootPath to an absolute, clean path on fs and creates
// it with any missing parents. An error here means the process must not
// start serving.
func NewService(fs afero.Fs, rootPath string, opts ...Option) (*Service, error) {
	root, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("could not resolve image storage location %q: %w", rootPath, err)
	}
	if err := fs.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("could not create the directory where uploaded images will be stored: %w", err)
	}
	if info, err := fs.Stat(root); err != nil {
		return nil, fmt.Errorf("could not stat image storage location %q: %w", root, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("image storage location %q is not a directory", root)
	}

	s := &Service{
		root:   root,
		store:  storage.NewAferoStore(afero.NewBasePathFs(fs, root)),
		events: pubsub.NopPublisher{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Root returns the absolute storage root.
func (s *Service) Root() string {
	return s.root
}

// Store copies the upload under a fresh name and returns that name. An absent
// or empty upload stores nothing and returns "".
func (s *Service) Store(ctx context.Context, upload Upload) (string, error) {
	if upload == nil || upload.IsEmpty() {
		return "", nil
	}

	originalFilename := upload.OriginalFilename()
	name := uuid.NewString() + fileExtension(originalFilename)

	src, err := upload.Open()
	if err != nil {
		return "", fmt.Errorf("could not store file %s: %w", originalFilename, err)
	}
	defer src.Close()

	size, err := s.store.Save(ctx, name, src)
	if err != nil {
		return "", fmt.Errorf("could not store file %s: %w", originalFilename, err)
	}

	s.logger.Debug("Stored image", slog.String("name", name), slog.Int64("size", size))
	publish(ctx, s, ImageStored, StoredEvent{Name: name, OriginalFilename: originalFilename, Size: size})
	return name, nil
}

// Delete removes the named image. An empty name or a missing file is a no-op.
func (s *Service) Delete(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	if err := domain.ValidateImageName(name); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, name); err != nil {
		return fmt.Errorf("could not delete file %s: %w", name, err)
	}

	s.logger.Debug("Deleted image", slog.String("name", name))
	publish(ctx, s, ImageDeleted, DeletedEvent{Name: name})
	return nil
}

// ResolvePath joins name onto the storage root. It never touches the disk
// and performs no containment check.
func (s *Service) ResolvePath(name string) string {
	return filepath.Join(s.root, name)
}

// Exists reports whether an image is stored under name.
func (s *Service) Exists(ctx context.Context, name string) (bool, error) {
	return s.store.Exists(ctx, name)
}

// Open opens the named image for streaming.
func (s *Service) Open(ctx context.Context, name string) (afero.File, error) {
	return s.store.Open(ctx, name)
}

// fileExtension returns the original name from its last dot, or "" when
// there is no dot or the suffix would span a directory separator.
func fileExtension(originalFilename string) string {
	i := strings.LastIndex(originalFilename, ".")
	if i < 0 {
		return ""
	}
	ext := originalFilename[i:]
	if strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return ext
}

func publish[T any](ctx context.Context, s *Service, event pubsub.Event[T], payload T) {
	if err := pubsub.Publish(ctx, s.events, event, payload); err != nil {
		s.logger.Warn("Failed to publish image event", slog.String("topic", event.Name()), slog.String("error", err.Error()))
	}
}
