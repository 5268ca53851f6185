package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/legalbrief/brief-cli/internal/core/domain"
	"github.com/legalbrief/brief-cli/internal/core/ports/driven"
	"github.com/legalbrief/brief-cli/internal/core/ports/driving"
	"github.com/legalbrief/brief-cli/internal/logger"
)

// Ensure ConversationService implements the interface.
var _ driving.ConversationService = (*ConversationService)(nil)

// feedbackRate caps fire-and-forget feedback votes. Telemetry must not be
// able to flood the backend; votes beyond the budget are dropped.
const feedbackRate = 2 // per second

// ConversationService owns the transcript and the per-submission state
// machine Idle -> Pending -> {Answered | Failed}.
//
// The transcript is append-only except for one sanctioned patch: when a
// submission settles, its pending turn is replaced in place. Settlement is
// matched to the submission by request id, not arrival order, so a stale
// response can never overwrite a newer pending turn.
type ConversationService struct {
	backend driven.BackendClient

	mu          sync.Mutex
	transcript  domain.Transcript
	pendingID   string // request id of the outstanding submission; "" when idle
	closed      bool
	subscribers []chan struct{}

	feedbackLimiter *rate.Limiter
}

// NewConversationService creates a conversation service backed by the
// given client.
func NewConversationService(backend driven.BackendClient) *ConversationService {
	return &ConversationService{
		backend:         backend,
		feedbackLimiter: rate.NewLimiter(rate.Limit(feedbackRate), feedbackRate),
	}
}

// Submit appends a user turn and a pending turn synchronously, then issues
// the query in the background. Rejections leave the transcript untouched
// and issue no request.
func (s *ConversationService) Submit(ctx context.Context, text string) error {
	if err := domain.ValidateQuery(text); err != nil {
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrClosed
	}
	if s.pendingID != "" {
		s.mu.Unlock()
		return domain.ErrQueryInFlight
	}

	id := uuid.NewString()
	s.pendingID = id
	s.transcript = append(s.transcript,
		domain.Turn{Kind: domain.TurnUser, Text: text},
		domain.Turn{Kind: domain.TurnPending},
	)
	s.mu.Unlock()
	s.notify()

	logger.Debug("Submitting query %s: %q", id, text)

	go func() {
		answer, err := s.backend.Query(ctx, text)
		s.settle(id, answer, err)
	}()

	return nil
}

// settle patches the pending turn for the given request id. A settle whose
// id no longer matches the outstanding submission is dropped without
// effect: the service was closed, or the settle is stale.
func (s *ConversationService) settle(id string, answer domain.Answer, err error) {
	s.mu.Lock()
	if s.closed || s.pendingID != id {
		s.mu.Unlock()
		logger.Debug("Dropping settle for abandoned query %s", id)
		return
	}

	idx := s.transcript.PendingIndex()
	if idx < 0 {
		// Unreachable while pendingID is set; guard anyway.
		s.pendingID = ""
		s.mu.Unlock()
		return
	}

	if err != nil {
		s.transcript[idx] = domain.Turn{Kind: domain.TurnError, Text: err.Error()}
		logger.Warn("Query %s failed: %v", id, err)
	} else {
		s.transcript[idx] = domain.Turn{
			Kind:     domain.TurnAnswer,
			Text:     answer.Text,
			Sources:  answer.Sources,
			MemoryID: answer.MemoryID,
		}
		logger.Debug("Query %s answered with %d sources", id, len(answer.Sources))
	}
	s.pendingID = ""
	s.mu.Unlock()
	s.notify()
}

// Feedback sends a vote for the answer at the given transcript index.
// The vote is dispatched in the background; transport failures are logged
// and swallowed.
func (s *ConversationService) Feedback(turnIndex int, vote domain.Vote) error {
	if !vote.IsValid() {
		return domain.ErrNoTurn
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrClosed
	}
	if turnIndex < 0 || turnIndex >= len(s.transcript) {
		s.mu.Unlock()
		return domain.ErrNoTurn
	}
	turn := s.transcript[turnIndex]
	s.mu.Unlock()

	if turn.Kind != domain.TurnAnswer || turn.MemoryID == "" {
		return domain.ErrNoTurn
	}

	if !s.feedbackLimiter.Allow() {
		logger.Debug("Feedback for %s dropped by rate limiter", turn.MemoryID)
		return nil
	}

	go func() {
		if err := s.backend.Feedback(context.Background(), turn.MemoryID, vote); err != nil {
			logger.Warn("Feedback for %s failed: %v", turn.MemoryID, err)
		}
	}()

	return nil
}

// Transcript returns a snapshot of the current transcript.
func (s *ConversationService) Transcript() domain.Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(domain.Transcript, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Subscribe returns a channel that receives a signal after every
// transcript change. The channel has capacity one; a slow consumer
// coalesces signals instead of blocking the core.
func (s *ConversationService) Subscribe() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan struct{}, 1)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// notify signals all subscribers without blocking. The lock is held for
// the whole loop so a concurrent Close cannot close a channel mid-send.
func (s *ConversationService) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	for _, ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Close abandons any outstanding submission and closes subscriber
// channels. A settle arriving after Close is dropped without touching
// the transcript.
func (s *ConversationService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.pendingID = ""
	for _, ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil
	return nil
}
