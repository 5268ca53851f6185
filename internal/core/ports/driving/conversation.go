package driving

import (
	"context"

	"github.com/legalbrief/brief-cli/internal/core/domain"
)

// ConversationService owns the question/answer transcript.
//
// Submissions are single-flight: at most one question may be outstanding,
// and the transcript is append-only except for the in-place settlement of
// the trailing pending turn.
type ConversationService interface {
	// Submit appends a user turn and a pending turn, then asynchronously
	// issues the query. Returns domain.ErrEmptyQuery for blank text and
	// domain.ErrQueryInFlight while a submission is outstanding; in both
	// cases the transcript is untouched and no request is issued.
	Submit(ctx context.Context, text string) error

	// Feedback sends a fire-and-forget vote for the answer at the given
	// transcript index. Transport failures are logged, never surfaced.
	Feedback(turnIndex int, vote domain.Vote) error

	// Transcript returns a snapshot of the current transcript.
	Transcript() domain.Transcript

	// Subscribe returns a channel that receives a signal after every
	// transcript change. The channel is closed when the service closes.
	Subscribe() <-chan struct{}

	// Close abandons any outstanding submission: its settlement is dropped
	// without touching the transcript. Further submissions are rejected.
	Close() error
}
