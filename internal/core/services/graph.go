package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/legalbrief/brief-cli/internal/core/domain"
	"github.com/legalbrief/brief-cli/internal/core/ports/driven"
	"github.com/legalbrief/brief-cli/internal/core/ports/driving"
	"github.com/legalbrief/brief-cli/internal/logger"
)

// Ensure GraphService implements the interface.
var _ driving.GraphService = (*GraphService)(nil)

// GraphService fetches the raw semantic graph payload and assembles it
// into a render-ready model. The model is rebuilt wholesale on every
// successful refresh; a failed refresh keeps the previous model so the
// view can fall back to it alongside an explicit error.
type GraphService struct {
	backend driven.BackendClient

	mu    sync.Mutex
	model *domain.GraphModel
}

// NewGraphService creates a graph service backed by the given client.
func NewGraphService(backend driven.BackendClient) *GraphService {
	return &GraphService{backend: backend}
}

// Refresh fetches and assembles a fresh graph model.
func (s *GraphService) Refresh(ctx context.Context) (*domain.GraphModel, error) {
	logger.Section("Graph Refresh")

	elements, err := s.backend.SemanticGraph(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch semantic graph: %w", err)
	}
	logger.Debug("Payload: %d elements", len(elements))

	model, err := domain.AssembleGraph(elements)
	if err != nil {
		// Integrity failures are not recovered into a partial graph.
		logger.Warn("Graph assembly rejected payload: %v", err)
		return nil, fmt.Errorf("assemble graph: %w", err)
	}
	logger.Debug("Assembled %d nodes, %d edges", len(model.Nodes), len(model.Edges))

	s.mu.Lock()
	s.model = model
	s.mu.Unlock()
	return model, nil
}

// Model returns the most recently assembled model, or nil before the
// first successful refresh.
func (s *GraphService) Model() *domain.GraphModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}
