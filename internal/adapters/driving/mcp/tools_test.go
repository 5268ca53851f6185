package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legalbrief/brief-cli/internal/core/domain"
)

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("returns cited answer", func(t *testing.T) {
		conv := newMockConversationService()
		conv.answer = domain.Answer{
			Text: "The NDA was signed by Acme Corp on 2023-04-12.",
			Sources: []domain.Citation{
				{Filename: "nda.pdf", PageNumber: 3, Snippet: "executed by Acme Corp"},
			},
			MemoryID: "m42",
		}

		server, err := NewServer(&Ports{Conversation: conv})
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "Who signed the NDA?"})

		require.NoError(t, err)
		assert.Equal(t, "The NDA was signed by Acme Corp on 2023-04-12.", output.Answer)
		assert.Equal(t, "m42", output.MemoryID)
		require.Len(t, output.Sources, 1)
		assert.Equal(t, "nda.pdf", output.Sources[0].Filename)
		assert.Equal(t, 3, output.Sources[0].PageNumber)
	})

	t.Run("blank question rejected", func(t *testing.T) {
		server, err := NewServer(&Ports{Conversation: newMockConversationService()})
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "   "})

		assert.ErrorIs(t, err, domain.ErrEmptyQuery)
	})

	t.Run("in-flight submission surfaces", func(t *testing.T) {
		conv := newMockConversationService()
		conv.submitErr = domain.ErrQueryInFlight

		server, err := NewServer(&Ports{Conversation: conv})
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "question"})

		assert.ErrorIs(t, err, domain.ErrQueryInFlight)
	})

	t.Run("transport failure becomes error", func(t *testing.T) {
		conv := newMockConversationService()
		conv.queryErr = &domain.TransportError{Status: 500, Message: "synthesis failed"}

		server, err := NewServer(&Ports{Conversation: conv})
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "question"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "synthesis failed")
	})
}

func TestServer_handleTimeline(t *testing.T) {
	ctx := context.Background()

	t.Run("returns events in backend order", func(t *testing.T) {
		timeline := &mockTimelineService{
			events: []domain.TimelineEvent{
				{Date: "2023-04-12", Source: "nda.pdf", Event: "NDA executed"},
				{Date: "2023-01-05", Source: "msa.pdf", Event: "MSA drafted"},
			},
		}

		server, err := NewServer(&Ports{
			Conversation: newMockConversationService(),
			Timeline:     timeline,
		})
		require.NoError(t, err)

		_, output, err := server.handleTimeline(ctx, nil, TimelineInput{})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, "NDA executed", output.Events[0].Event)
		assert.Equal(t, "msa.pdf", output.Events[1].Source)
	})

	t.Run("returns error on fetch failure", func(t *testing.T) {
		timeline := &mockTimelineService{
			err: &domain.TransportError{Status: 503, Message: "backend down"},
		}

		server, err := NewServer(&Ports{
			Conversation: newMockConversationService(),
			Timeline:     timeline,
		})
		require.NoError(t, err)

		_, _, err = server.handleTimeline(ctx, nil, TimelineInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "backend down")
	})
}

func TestServer_handleConsolidate(t *testing.T) {
	ctx := context.Background()

	t.Run("default threshold applied", func(t *testing.T) {
		consolidation := &mockConsolidationService{
			result: domain.ConsolidationResult{Message: "Consolidated 2 groups"},
		}

		server, err := NewServer(&Ports{
			Conversation:  newMockConversationService(),
			Consolidation: consolidation,
		})
		require.NoError(t, err)

		_, output, err := server.handleConsolidate(ctx, nil, ConsolidateInput{})

		require.NoError(t, err)
		assert.Equal(t, "Consolidated 2 groups", output.Message)
		require.Len(t, consolidation.thresholds, 1)
		assert.InDelta(t, domain.DefaultConsolidationThreshold, consolidation.thresholds[0], 1e-9)
	})

	t.Run("groups mapped", func(t *testing.T) {
		consolidation := &mockConsolidationService{
			result: domain.ConsolidationResult{
				Message: "Consolidated 1 group",
				Groups: []domain.ConsolidatedGroup{
					{ID: "g1", Source: "nda.pdf", Summary: "Confidentiality obligations", MemberCount: 4},
				},
			},
		}

		server, err := NewServer(&Ports{
			Conversation:  newMockConversationService(),
			Consolidation: consolidation,
		})
		require.NoError(t, err)

		_, output, err := server.handleConsolidate(ctx, nil, ConsolidateInput{Threshold: 0.9})

		require.NoError(t, err)
		require.Len(t, output.Groups, 1)
		assert.Equal(t, "g1", output.Groups[0].ID)
		assert.Equal(t, 4, output.Groups[0].MemberCount)
		assert.InDelta(t, 0.9, consolidation.thresholds[0], 1e-9)
	})
}
