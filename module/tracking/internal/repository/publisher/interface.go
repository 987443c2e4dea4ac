package publisher

import (
	"context"

	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/domain"
)

type LivePublisher interface {
	PublishUpdate(ctx context.Context, update *domain.LiveUpdate) error
}
