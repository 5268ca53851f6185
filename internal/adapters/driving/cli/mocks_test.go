package cli

import (
	"context"

	"github.com/legalbrief/brief-cli/internal/core/domain"
)

// mockConversation settles submissions synchronously so ask never waits.
type mockConversation struct {
	answer    domain.Answer
	submitErr error
	queryErr  *domain.TransportError

	transcript domain.Transcript
	updates    chan struct{}
}

func newMockConversation() *mockConversation {
	return &mockConversation{updates: make(chan struct{}, 1)}
}

func (m *mockConversation) Submit(_ context.Context, text string) error {
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

func (m *mockConversation) Feedback(int, domain.Vote) error { return nil }

func (m *mockConversation) Transcript() domain.Transcript {
	out := make(domain.Transcript, len(m.transcript))
	copy(out, m.transcript)
	return out
}

func (m *mockConversation) Subscribe() <-chan struct{} { return m.updates }

func (m *mockConversation) Close() error {
	close(m.updates)
	return nil
}

type mockGraph struct {
	model *domain.GraphModel
	err   error
}

func (m *mockGraph) Refresh(_ context.Context) (*domain.GraphModel, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.model, nil
}

func (m *mockGraph) Model() *domain.GraphModel { return m.model }

type mockTimeline struct {
	events []domain.TimelineEvent
	err    error
}

func (m *mockTimeline) Events(_ context.Context) ([]domain.TimelineEvent, error) {
	return m.events, m.err
}

type mockConsolidation struct {
	result     domain.ConsolidationResult
	err        error
	thresholds []float64
}

func (m *mockConsolidation) Run(_ context.Context, threshold float64) (domain.ConsolidationResult, error) {
	if err := domain.ValidateThreshold(threshold); err != nil {
		return domain.ConsolidationResult{}, err
	}
	m.thresholds = append(m.thresholds, threshold)
	if m.err != nil {
		return domain.ConsolidationResult{}, m.err
	}
	return m.result, nil
}

func (m *mockConsolidation) Latest() *domain.ConsolidationResult { return &m.result }

type mockIngest struct {
	message string
	err     error
	paths   []string
}

func (m *mockIngest) Upload(_ context.Context, path string) (string, error) {
	m.paths = append(m.paths, path)
	if m.err != nil {
		return "", m.err
	}
	return m.message, nil
}
