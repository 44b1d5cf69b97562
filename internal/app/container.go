package app

import (
	"github.com/nfrund/petimages/internal/config"
	"github.com/nfrund/petimages/internal/images"
	"github.com/nfrund/petimages/internal/pubsub"
	"github.com/nfrund/petimages/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// NewContainer wires the application's services. Nothing is constructed until
// a service is invoked, so storage errors surface on the first Invoke.
func NewContainer(cfg *config.Config, fs afero.Fs) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue[afero.Fs](injector, fs)
	do.Provide(injector, newEventBus)
	do.Provide(injector, newImageService)
	do.Provide(injector, newImageHandler)
	do.Provide(injector, newServer)

	return injector
}

func newEventBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

func newImageService(i do.Injector) (*images.Service, error) {
	cfg := do.MustInvoke[*config.Config](i)
	fs := do.MustInvoke[afero.Fs](i)
	bus, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return nil, err
	}
	return images.NewService(fs, cfg.StorageLocation, images.WithPublisher(bus))
}

func newImageHandler(i do.Injector) (*images.Handler, error) {
	cfg := do.MustInvoke[*config.Config](i)
	svc, err := do.Invoke[*images.Service](i)
	if err != nil {
		return nil, err
	}
	return images.NewHandler(svc, images.HandlerOptions{
		MaxUploadBytes:  cfg.MaxUploadBytes,
		ContentTypeMode: images.ContentTypeMode(cfg.ContentTypeMode),
	}), nil
}

func newServer(i do.Injector) (*server.Server, error) {
	cfg := do.MustInvoke[*config.Config](i)
	handler, err := do.Invoke[*images.Handler](i)
	if err != nil {
		return nil, err
	}
	bus, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return nil, err
	}

	s := server.New(cfg, handler, bus)
	s.RegisterRoutes()
	return s, nil
}
