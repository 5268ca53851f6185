package driving

import (
	"context"

	"github.com/legalbrief/brief-cli/internal/core/domain"
)

// GraphService fetches and assembles the semantic graph.
type GraphService interface {
	// Refresh fetches a fresh payload and rebuilds the model wholesale.
	// On transport or assembly failure the previously held model is kept
	// and the error is returned; the caller renders "graph unavailable"
	// rather than a corrupted graph.
	Refresh(ctx context.Context) (*domain.GraphModel, error)

	// Model returns the most recently assembled model, or nil if no
	// successful refresh has happened yet.
	Model() *domain.GraphModel
}
