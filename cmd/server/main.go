package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/petimages/internal/app"
	"github.com/nfrund/petimages/internal/config"
	"github.com/nfrund/petimages/internal/logging"
	"github.com/nfrund/petimages/internal/pubsub"
	"github.com/nfrund/petimages/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup so main can exit non-zero after them.
func run() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.New(cfg.LogFormat, cfg.LogLevel)

	injector := app.NewContainer(cfg, afero.NewOsFs())

	// Constructing the server creates the storage root; failure there means
	// we must not start serving.
	s, err := do.Invoke[*server.Server](injector)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	bus := do.MustInvoke[*pubsub.WatermillBridge](injector)
	defer bus.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Start(ctx); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}
