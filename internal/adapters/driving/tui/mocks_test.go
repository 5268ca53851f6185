package tui

import (
	"context"

	"github.com/legalbrief/brief-cli/internal/core/domain"
)

// MockConversationService is a controllable in-memory conversation for tests.
type MockConversationService struct {
	SubmitErr   error
	transcript  domain.Transcript
	updates     chan struct{}
	FeedbackLog []domain.Vote
}

func NewMockConversationService() *MockConversationService {
	return &MockConversationService{updates: make(chan struct{}, 1)}
}

func (m *MockConversationService) Submit(_ context.Context, text string) error {
	if m.SubmitErr != nil {
		return m.SubmitErr
	}
	if err := domain.ValidateQuery(text); err != nil {
		return err
	}
	m.transcript = append(m.transcript,
		domain.Turn{Kind: domain.TurnUser, Text: text},
		domain.Turn{Kind: domain.TurnPending},
	)
	m.signal()
	return nil
}

// Settle replaces the pending turn with an answer, as the real service does.
func (m *MockConversationService) Settle(answer domain.Answer) {
	if i := m.transcript.PendingIndex(); i >= 0 {
		m.transcript[i] = domain.Turn{
			Kind:     domain.TurnAnswer,
			Text:     answer.Text,
			Sources:  answer.Sources,
			MemoryID: answer.MemoryID,
		}
		m.signal()
	}
}

func (m *MockConversationService) Feedback(_ int, vote domain.Vote) error {
	m.FeedbackLog = append(m.FeedbackLog, vote)
	return nil
}

func (m *MockConversationService) Transcript() domain.Transcript {
	out := make(domain.Transcript, len(m.transcript))
	copy(out, m.transcript)
	return out
}

func (m *MockConversationService) Subscribe() <-chan struct{} {
	return m.updates
}

func (m *MockConversationService) Close() error {
	close(m.updates)
	return nil
}

func (m *MockConversationService) signal() {
	select {
	case m.updates <- struct{}{}:
	default:
	}
}

// MockGraphService returns a fixed model.
type MockGraphService struct {
	RefreshModel *domain.GraphModel
	RefreshErr   error
}

func (m *MockGraphService) Refresh(_ context.Context) (*domain.GraphModel, error) {
	return m.RefreshModel, m.RefreshErr
}

func (m *MockGraphService) Model() *domain.GraphModel {
	return m.RefreshModel
}

// MockConsolidationService returns a fixed result.
type MockConsolidationService struct {
	RunResult domain.ConsolidationResult
	RunErr    error
	latest    *domain.ConsolidationResult
}

func (m *MockConsolidationService) Run(_ context.Context, threshold float64) (domain.ConsolidationResult, error) {
	if err := domain.ValidateThreshold(threshold); err != nil {
		return domain.ConsolidationResult{}, err
	}
	if m.RunErr != nil {
		return domain.ConsolidationResult{}, m.RunErr
	}
	m.latest = &m.RunResult
	return m.RunResult, nil
}

func (m *MockConsolidationService) Latest() *domain.ConsolidationResult {
	return m.latest
}

// MockTimelineService returns fixed events.
type MockTimelineService struct {
	EventList []domain.TimelineEvent
	EventsErr error
}

func (m *MockTimelineService) Events(_ context.Context) ([]domain.TimelineEvent, error) {
	return m.EventList, m.EventsErr
}
