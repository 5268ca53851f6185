// Package tui provides an interactive terminal user interface for brief.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/legalbrief/brief-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Conversation owns the question/answer transcript.
	Conversation driving.ConversationService

	// Graph fetches and assembles the semantic graph.
	Graph driving.GraphService

	// Consolidation triggers memory consolidation jobs.
	Consolidation driving.ConsolidationService

	// Timeline fetches the extracted event timeline.
	Timeline driving.TimelineService

	// Ingest uploads documents for backend processing.
	Ingest driving.IngestService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	conversation driving.ConversationService,
	graph driving.GraphService,
	consolidation driving.ConsolidationService,
	timeline driving.TimelineService,
) *Ports {
	return &Ports{
		Conversation:  conversation,
		Graph:         graph,
		Consolidation: consolidation,
		Timeline:      timeline,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Conversation == nil {
		return ErrMissingConversationService
	}
	if p.Graph == nil {
		return ErrMissingGraphService
	}
	if p.Consolidation == nil {
		return ErrMissingConsolidationService
	}
	if p.Timeline == nil {
		return ErrMissingTimelineService
	}
	return nil
}
