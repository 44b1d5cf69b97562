package images

import (
	"context"
	"log/slog"

	"github.com/nfrund/petimages/internal/pubsub"
)

// StoredEvent is published after an upload has been written to disk.
type StoredEvent struct {
	Name             string `json:"name"`
	OriginalFilename string `json:"original_filename"`
	Size             int64  `json:"size"`
}

// DeletedEvent is published after a delete request completes.
type DeletedEvent struct {
	Name string `json:"name"`
}

var (
	ImageStored  = pubsub.NewEvent[StoredEvent]("images.stored")
	ImageDeleted = pubsub.NewEvent[DeletedEvent]("images.deleted")
)

// SubscribeEventLog writes every image lifecycle event to logger until ctx
// is canceled.
func SubscribeEventLog(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	err := sub.Subscribe(ctx, ImageStored.Name(), func(ctx context.Context, msg pubsub.Message) error {
		event, err := ImageStored.Decode(msg)
		if err != nil {
			return err
		}
		logger.Info("Image stored",
			slog.String("name", event.Name),
			slog.String("original_filename", event.OriginalFilename),
			slog.Int64("size", event.Size))
		return nil
	})
	if err != nil {
		return err
	}

	return sub.Subscribe(ctx, ImageDeleted.Name(), func(ctx context.Context, msg pubsub.Message) error {
		event, err := ImageDeleted.Decode(msg)
		if err != nil {
			return err
		}
		logger.Info("Image deleted", slog.String("name", event.Name))
		return nil
	})
}
