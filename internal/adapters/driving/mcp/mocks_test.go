package mcp

import (
	"context"

	"github.com/legalbrief/brief-cli/internal/core/domain"
)

// mockConversationService settles submissions synchronously so handleAsk
// never has to wait on the subscription.
type mockConversationService struct {
	answer    domain.Answer
	submitErr error
	queryErr  *domain.TransportError

	transcript domain.Transcript
	updates    chan struct{}
}

func newMockConversationService() *mockConversationService {
	return &mockConversationService{updates: make(chan struct{}, 1)}
}

func (m *mockConversationService) Submit(_ context.Context, text string) error {
	if m.submitErr != nil {
		return m.submitErr
	}
	if err := domain.ValidateQuery(text); err != nil {
		return err
	}
	m.transcript = append(m.transcript, domain.Turn{Kind: domain.TurnUser, Text: text})
	if m.queryErr != nil {
		m.transcript = append(m.transcript, domain.Turn{Kind: domain.TurnError, Text: m.queryErr.Error()})
		return nil
	}
	m.transcript = append(m.transcript, domain.Turn{
		Kind:     domain.TurnAnswer,
		Text:     m.answer.Text,
		Sources:  m.answer.Sources,
		MemoryID: m.answer.MemoryID,
	})
	return nil
}

func (m *mockConversationService) Feedback(int, domain.Vote) error { return nil }

func (m *mockConversationService) Transcript() domain.Transcript {
	out := make(domain.Transcript, len(m.transcript))
	copy(out, m.transcript)
	return out
}

func (m *mockConversationService) Subscribe() <-chan struct{} { return m.updates }

func (m *mockConversationService) Close() error {
	close(m.updates)
	return nil
}

type mockGraphService struct {
	model *domain.GraphModel
	err   error
}

func (m *mockGraphService) Refresh(_ context.Context) (*domain.GraphModel, error) {
	return m.model, m.err
}

func (m *mockGraphService) Model() *domain.GraphModel { return m.model }

type mockTimelineService struct {
	events []domain.TimelineEvent
	err    error
}

func (m *mockTimelineService) Events(_ context.Context) ([]domain.TimelineEvent, error) {
	return m.events, m.err
}

type mockConsolidationService struct {
	result     domain.ConsolidationResult
	err        error
	thresholds []float64
}

func (m *mockConsolidationService) Run(_ context.Context, threshold float64) (domain.ConsolidationResult, error) {
	m.thresholds = append(m.thresholds, threshold)
	if m.err != nil {
		return domain.ConsolidationResult{}, m.err
	}
	return m.result, nil
}

func (m *mockConsolidationService) Latest() *domain.ConsolidationResult { return &m.result }
