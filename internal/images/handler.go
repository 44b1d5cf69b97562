package images

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/petimages/internal/domain"
	"github.com/nfrund/petimages/internal/middleware"
)

// ContentTypeMode selects how Serve labels the response body.
type ContentTypeMode string

const (
	// ContentTypeFixed always declares image/jpeg, whatever was stored.
	ContentTypeFixed ContentTypeMode = "fixed"
	// ContentTypeSniff detects the type from the first bytes of the file.
	ContentTypeSniff ContentTypeMode = "sniff"
)

const fixedContentType = "image/jpeg"

// HandlerOptions tunes the HTTP surface of the image service.
type HandlerOptions struct {
	MaxUploadBytes  int64
	ContentTypeMode ContentTypeMode
}

// Handler handles HTTP requests for stored images.
type Handler struct {
	images          *Service
	maxUploadBytes  int64
	contentTypeMode ContentTypeMode
}

// NewHandler creates a new Handler.
func NewHandler(images *Service, opts HandlerOptions) *Handler {
	mode := opts.ContentTypeMode
	if mode == "" {
		mode = ContentTypeFixed
	}
	return &Handler{
		images:          images,
		maxUploadBytes:  opts.MaxUploadBytes,
		contentTypeMode: mode,
	}
}

// Serve streams the image named by the wildcard route parameter.
// Responses are 200 with the body, 404 when nothing is stored under the name,
// or 400 when the name cannot be turned into a path under the storage root.
func (h *Handler) Serve(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	name, err := imageNameParam(c)
	if err != nil {
		logger.Debug("Rejected image request", slog.String("error", err.Error()))
		return c.NoContent(http.StatusBadRequest)
	}
	if name == "" {
		return c.NoContent(http.StatusNotFound)
	}
	if err := domain.ValidateImageName(name); err != nil {
		logger.Debug("Rejected image request", slog.String("error", err.Error()))
		return c.NoContent(http.StatusBadRequest)
	}

	path := h.images.ResolvePath(name)

	exists, err := h.images.Exists(ctx, name)
	if err != nil {
		logger.Warn("Failed to check image", slog.String("path", path), slog.String("error", err.Error()))
	}
	if !exists {
		return c.NoContent(http.StatusNotFound)
	}

	file, err := h.images.Open(ctx, name)
	if err != nil {
		// Deleted between the existence check and the open.
		logger.Debug("Image vanished before streaming", slog.String("path", path), slog.String("error", err.Error()))
		return c.NoContent(http.StatusNotFound)
	}
	defer file.Close()

	contentType := fixedContentType
	if h.contentTypeMode == ContentTypeSniff {
		contentType, err = sniffContentType(file)
		if err != nil {
			// Unreadable after open is reported like a vanished file.
			logger.Warn("Failed to sniff image type", slog.String("path", path), slog.String("error", err.Error()))
			return c.NoContent(http.StatusNotFound)
		}
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+filepath.Base(path)+`"`)
	return c.Stream(http.StatusOK, contentType, file)
}

// Upload stores the multipart field "file" and returns the generated name.
// An absent or empty file stores nothing and yields 204.
func (h *Handler) Upload(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	fileHeader, err := c.FormFile("file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		return c.String(http.StatusBadRequest, "Invalid file upload request")
	}

	if fileHeader != nil && h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return c.String(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File size of %d bytes exceeds the limit of %d bytes", fileHeader.Size, h.maxUploadBytes))
	}

	name, err := h.images.Store(ctx, MultipartUpload{Header: fileHeader})
	if err != nil {
		logger.Error("Failed to save image to storage", slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save image")
	}
	if name == "" {
		return c.NoContent(http.StatusNoContent)
	}

	logger.Info("Image uploaded", slog.String("name", name))
	return c.JSON(http.StatusCreated, NewImageResponse(name))
}

// Delete removes the image named by the wildcard route parameter.
func (h *Handler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	name, err := imageNameParam(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.images.Delete(ctx, name); err != nil {
		if errors.Is(err, domain.ErrInvalidFileName) {
			return c.NoContent(http.StatusBadRequest)
		}
		logger.Error("Failed to delete image from storage", slog.String("name", name), slog.String("error", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete image")
	}

	return c.NoContent(http.StatusNoContent)
}

// imageNameParam returns the decoded wildcard parameter. Echo matches on the
// raw path when the request carries escapes, leaving the value encoded.
func imageNameParam(c echo.Context) (string, error) {
	name := c.Param("*")
	if c.Request().URL.RawPath == "" {
		return name, nil
	}
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidFileName, err)
	}
	return decoded, nil
}

func sniffContentType(file io.ReadSeeker) (string, error) {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mtype.String(), nil
}
