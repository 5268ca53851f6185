package services

import (
	"context"
	"sync"

	"github.com/legalbrief/brief-cli/internal/core/domain"
	"github.com/legalbrief/brief-cli/internal/core/ports/driven"
	"github.com/legalbrief/brief-cli/internal/core/ports/driving"
	"github.com/legalbrief/brief-cli/internal/logger"
)

// Ensure ConsolidationService implements the interface.
var _ driving.ConsolidationService = (*ConsolidationService)(nil)

// ConsolidationService triggers memory consolidation jobs. The backend
// re-runs the job on every invocation, so the client enforces the same
// single-flight discipline as submissions and replaces, never accumulates,
// the held result.
type ConsolidationService struct {
	backend driven.BackendClient

	mu       sync.Mutex
	inFlight bool
	latest   *domain.ConsolidationResult
}

// NewConsolidationService creates a consolidation service backed by the
// given client.
func NewConsolidationService(backend driven.BackendClient) *ConsolidationService {
	return &ConsolidationService{backend: backend}
}

// Run triggers a consolidation job and blocks until it settles.
func (s *ConsolidationService) Run(ctx context.Context, threshold float64) (domain.ConsolidationResult, error) {
	if err := domain.ValidateThreshold(threshold); err != nil {
		return domain.ConsolidationResult{}, err
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return domain.ConsolidationResult{}, domain.ErrConsolidationInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	logger.Debug("Consolidating with threshold %.2f", threshold)
	result, err := s.backend.Consolidate(ctx, threshold)

	s.mu.Lock()
	s.inFlight = false
	if err == nil {
		s.latest = &result
	}
	s.mu.Unlock()

	if err != nil {
		logger.Warn("Consolidation failed: %v", err)
		return domain.ConsolidationResult{}, err
	}
	logger.Debug("Consolidated %d groups", len(result.Groups))
	return result, nil
}

// Latest returns the most recent result, or nil if no job has completed.
func (s *ConsolidationService) Latest() *domain.ConsolidationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}
