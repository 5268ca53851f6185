// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/legalbrief/brief-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewChat is the question/answer transcript view.
	ViewChat
	// ViewGraph is the semantic graph view.
	ViewGraph
	// ViewTimeline is the extracted event timeline view.
	ViewTimeline
	// ViewConsolidate is the memory consolidation view.
	ViewConsolidate
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewChat:
		return "chat"
	case ViewGraph:
		return "graph"
	case ViewTimeline:
		return "timeline"
	case ViewConsolidate:
		return "consolidate"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// TranscriptChanged signals that the conversation transcript mutated:
// a submission was appended or a pending turn settled.
type TranscriptChanged struct{}

// GraphLoaded carries a freshly assembled graph model, or the reason the
// graph is unavailable.
type GraphLoaded struct {
	Model *domain.GraphModel
	Err   error
}

// TimelineLoaded carries the extracted events from the backend.
type TimelineLoaded struct {
	Events []domain.TimelineEvent
	Err    error
}

// ConsolidationCompleted signals a consolidation job settled.
type ConsolidationCompleted struct {
	Result domain.ConsolidationResult
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
