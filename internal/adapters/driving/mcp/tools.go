package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/legalbrief/brief-cli/internal/core/domain"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the natural-language question to ask against the ingested documents"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer   string           `json:"answer"`
	Sources  []CitationOutput `json:"sources"`
	MemoryID string           `json:"memory_id,omitempty"`
}

// CitationOutput represents a single cited passage.
type CitationOutput struct {
	Filename   string `json:"filename"`
	PageNumber int    `json:"page_number"`
	Snippet    string `json:"snippet"`
}

// TimelineInput is the input schema for the timeline tool.
type TimelineInput struct{}

// TimelineOutput is the output schema for the timeline tool.
type TimelineOutput struct {
	Events []TimelineEventOutput `json:"events"`
	Count  int                   `json:"count"`
}

// TimelineEventOutput represents a single extracted event.
type TimelineEventOutput struct {
	Date   string `json:"date"`
	Source string `json:"source"`
	Event  string `json:"event"`
}

// ConsolidateInput is the input schema for the consolidate tool.
type ConsolidateInput struct {
	Threshold float64 `json:"threshold,omitempty" jsonschema:"similarity threshold in (0, 1] (default 0.75)"`
}

// ConsolidateOutput is the output schema for the consolidate tool.
type ConsolidateOutput struct {
	Message string        `json:"message"`
	Groups  []GroupOutput `json:"groups"`
}

// GroupOutput represents a single consolidated memory group.
type GroupOutput struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Summary     string `json:"summary"`
	MemberCount int    `json:"member_count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask a question against the ingested case documents and get a cited answer",
	}, s.handleAsk)

	if s.ports.Timeline != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "timeline",
			Description: "List the dated events extracted from the ingested documents",
		}, s.handleTimeline)
	}

	if s.ports.Consolidation != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "consolidate",
			Description: "Group related memory chunks into higher-level summaries",
		}, s.handleConsolidate)
	}
}

// handleAsk handles the ask tool invocation. It waits for the submission
// to settle before returning, so the tool call is synchronous.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	sub := s.ports.Conversation.Subscribe()
	if err := s.ports.Conversation.Submit(ctx, input.Question); err != nil {
		return nil, AskOutput{}, err
	}

	transcript := s.ports.Conversation.Transcript()
	for transcript.HasPending() {
		select {
		case _, ok := <-sub:
			if !ok {
				return nil, AskOutput{}, ErrAnswerAbandoned
			}
		case <-ctx.Done():
			return nil, AskOutput{}, ctx.Err()
		}
		transcript = s.ports.Conversation.Transcript()
	}

	last := transcript[len(transcript)-1]
	if last.Kind == domain.TurnError {
		return nil, AskOutput{}, errors.New(last.Text)
	}

	output := AskOutput{
		Answer:   last.Text,
		Sources:  make([]CitationOutput, len(last.Sources)),
		MemoryID: last.MemoryID,
	}
	for i, src := range last.Sources {
		output.Sources[i] = CitationOutput{
			Filename:   src.Filename,
			PageNumber: src.PageNumber,
			Snippet:    src.Snippet,
		}
	}

	return nil, output, nil
}

// handleTimeline handles the timeline tool invocation.
func (s *Server) handleTimeline(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ TimelineInput,
) (*mcp.CallToolResult, TimelineOutput, error) {
	events, err := s.ports.Timeline.Events(ctx)
	if err != nil {
		return nil, TimelineOutput{}, err
	}

	output := TimelineOutput{
		Events: make([]TimelineEventOutput, len(events)),
		Count:  len(events),
	}
	for i, e := range events {
		output.Events[i] = TimelineEventOutput{
			Date:   e.Date,
			Source: e.Source,
			Event:  e.Event,
		}
	}

	return nil, output, nil
}

// handleConsolidate handles the consolidate tool invocation.
func (s *Server) handleConsolidate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConsolidateInput,
) (*mcp.CallToolResult, ConsolidateOutput, error) {
	threshold := input.Threshold
	if threshold == 0 {
		threshold = domain.DefaultConsolidationThreshold
	}

	result, err := s.ports.Consolidation.Run(ctx, threshold)
	if err != nil {
		return nil, ConsolidateOutput{}, err
	}

	output := ConsolidateOutput{
		Message: result.Message,
		Groups:  make([]GroupOutput, len(result.Groups)),
	}
	for i, g := range result.Groups {
		output.Groups[i] = GroupOutput{
			ID:          g.ID,
			Source:      g.Source,
			Summary:     g.Summary,
			MemberCount: g.MemberCount,
		}
	}

	return nil, output, nil
}
