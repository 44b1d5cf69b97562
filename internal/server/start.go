package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/nfrund/petimages/internal/images"
)

const shutdownTimeout = 10 * time.Second

// Start serves HTTP on the configured address until ctx is canceled, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	if s.events != nil {
		if err := images.SubscribeEventLog(ctx, s.events, slog.Default()); err != nil {
			return fmt.Errorf("failed to subscribe to image events: %w", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", slog.String("addr", s.Cfg.ServerAddr))
		if err := s.E.Start(s.Cfg.ServerAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("shutting down the server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.E.Shutdown(shutdownCtx)
}

// bodyLimit renders a byte count in the form echo's BodyLimit expects.
func bodyLimit(n int64) string {
	return strconv.FormatInt(n, 10) + "B"
}
