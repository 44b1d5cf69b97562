package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/petimages/internal/config"
	"github.com/nfrund/petimages/internal/images"
	"github.com/nfrund/petimages/internal/middleware"
	"github.com/nfrund/petimages/internal/pubsub"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E      *echo.Echo
	Cfg    *config.Config
	images *images.Handler
	events pubsub.Subscriber
}

// New creates a new Server instance with the shared middleware installed.
func New(cfg *config.Config, imageHandler *images.Handler, events pubsub.Subscriber) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	setupErrorHandling(e)

	return &Server{
		E:      e,
		Cfg:    cfg,
		images: imageHandler,
		events: events,
	}
}

// setupErrorHandling logs unhandled errors with a stack trace before handing
// them to echo's default handler. HTTP errors raised on purpose by handlers
// are passed through unchanged.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			logger := middleware.FromContext(c.Request().Context())
			logger.Error("Internal Server Error (Unhandled)",
				slog.String("error", err.Error()),
				slog.String("path", c.Request().URL.Path),
				slog.String("stack_trace", string(debug.Stack())))
			err = echo.NewHTTPError(http.StatusInternalServerError)
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
