package tui

import "errors"

// ErrMissingConversationService is returned when the conversation service is not provided.
var ErrMissingConversationService = errors.New("tui: conversation service is required")

// ErrMissingGraphService is returned when the graph service is not provided.
var ErrMissingGraphService = errors.New("tui: graph service is required")

// ErrMissingConsolidationService is returned when the consolidation service is not provided.
var ErrMissingConsolidationService = errors.New("tui: consolidation service is required")

// ErrMissingTimelineService is returned when the timeline service is not provided.
var ErrMissingTimelineService = errors.New("tui: timeline service is required")
