package mcp

import (
	"github.com/legalbrief/brief-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Conversation owns the question/answer transcript.
	Conversation driving.ConversationService

	// Graph fetches and assembles the semantic graph.
	Graph driving.GraphService

	// Timeline fetches the extracted event timeline.
	Timeline driving.TimelineService

	// Consolidation triggers memory consolidation jobs.
	Consolidation driving.ConsolidationService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Conversation == nil {
		return ErrMissingConversationService
	}
	// Graph, Timeline and Consolidation are optional; their tools and
	// resources degrade gracefully when absent.
	return nil
}
