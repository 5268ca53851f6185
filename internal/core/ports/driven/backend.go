package driven

import (
	"context"
	"io"

	"github.com/legalbrief/brief-cli/internal/core/domain"
)

// BackendClient is the sole network boundary to the backend. Implementations
// own the base endpoint and default headers, perform no retries and no
// caching, and surface any non-2xx response or network failure as a
// *domain.TransportError.
type BackendClient interface {
	// Query submits a question for retrieval-augmented synthesis.
	// Citation order in the result is the backend's evidence ranking and
	// must be preserved.
	Query(ctx context.Context, text string) (domain.Answer, error)

	// Timeline fetches dated events extracted from ingested documents,
	// in backend sort order.
	Timeline(ctx context.Context) ([]domain.TimelineEvent, error)

	// SemanticGraph fetches the raw, untyped graph payload. Validation and
	// assembly are the caller's concern.
	SemanticGraph(ctx context.Context) ([]domain.GraphElement, error)

	// Consolidate runs a memory consolidation job with the given
	// similarity threshold.
	Consolidate(ctx context.Context, threshold float64) (domain.ConsolidationResult, error)

	// Upload streams a PDF to the ingestion endpoint and returns the
	// backend's status message. Processing continues server-side after
	// the call returns.
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)

	// Feedback records a vote on an answer's interaction memory.
	// Non-critical telemetry; callers may swallow failures.
	Feedback(ctx context.Context, memoryID string, vote domain.Vote) error
}
