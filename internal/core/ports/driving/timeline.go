package driving

import (
	"context"

	"github.com/legalbrief/brief-cli/internal/core/domain"
)

// TimelineService fetches the extracted event timeline.
type TimelineService interface {
	// Events fetches dated events in backend order.
	Events(ctx context.Context) ([]domain.TimelineEvent, error)
}
