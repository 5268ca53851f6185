package services

import (
	"context"
	"fmt"

	"github.com/legalbrief/brief-cli/internal/core/domain"
	"github.com/legalbrief/brief-cli/internal/core/ports/driven"
	"github.com/legalbrief/brief-cli/internal/core/ports/driving"
	"github.com/legalbrief/brief-cli/internal/logger"
)

// Ensure TimelineService implements the interface.
var _ driving.TimelineService = (*TimelineService)(nil)

// TimelineService fetches the extracted event timeline. The backend sorts
// events by date; order is preserved as received.
type TimelineService struct {
	backend driven.BackendClient
}

// NewTimelineService creates a timeline service backed by the given client.
func NewTimelineService(backend driven.BackendClient) *TimelineService {
	return &TimelineService{backend: backend}
}

// Events fetches dated events in backend order.
func (s *TimelineService) Events(ctx context.Context) ([]domain.TimelineEvent, error) {
	events, err := s.backend.Timeline(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch timeline: %w", err)
	}
	logger.Debug("Timeline: %d events", len(events))
	return events, nil
}
