package driving

import (
	"context"

	"github.com/legalbrief/brief-cli/internal/core/domain"
)

// ConsolidationService triggers memory consolidation jobs.
//
// Runs are single-flight; a successful run replaces the held result.
type ConsolidationService interface {
	// Run triggers a consolidation job. Returns domain.ErrInvalidThreshold
	// for thresholds outside (0, 1] before any request is issued, and
	// domain.ErrConsolidationInFlight while a job is outstanding.
	Run(ctx context.Context, threshold float64) (domain.ConsolidationResult, error)

	// Latest returns the most recent result, or nil if no job has
	// completed yet.
	Latest() *domain.ConsolidationResult
}
