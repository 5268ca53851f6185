package domain

import "strings"

// TurnKind identifies the role of a transcript entry.
type TurnKind string

// Available turn kinds.
const (
	// TurnUser is a question submitted by the user.
	TurnUser TurnKind = "user"

	// TurnPending marks an outstanding submission awaiting settlement.
	// At most one pending turn exists in a transcript at any time.
	TurnPending TurnKind = "pending"

	// TurnAnswer is a synthesised answer with its citations.
	TurnAnswer TurnKind = "answer"

	// TurnError records a failed submission. The transcript stays usable;
	// the user resubmits manually.
	TurnError TurnKind = "error"
)

// String returns the string representation.
func (k TurnKind) String() string {
	return string(k)
}

// Citation is a source reference attached to an answer. Citations arrive
// ordered by evidence ranking and are never re-sorted or mutated locally.
type Citation struct {
	// Filename is the source document name, e.g. "NDA.pdf".
	Filename string

	// PageNumber is the 1-based page the snippet was taken from.
	PageNumber int

	// Snippet is the supporting passage.
	Snippet string
}

// Turn is one entry in the conversational transcript. Exactly one kind is
// populated; the zero fields of the other kinds are ignored.
type Turn struct {
	Kind TurnKind

	// Text is the question (TurnUser), the answer (TurnAnswer), or the
	// failure message (TurnError).
	Text string

	// Sources carries the answer's citations, in backend order.
	Sources []Citation

	// MemoryID is the interaction memory created by the backend for an
	// answer. Used to address feedback votes.
	MemoryID string
}

// Answer is the settled outcome of a query: the synthesised text plus its
// supporting citations.
type Answer struct {
	Text     string
	Sources  []Citation
	MemoryID string
}

// Vote is a feedback signal on an answer.
type Vote string

// Available votes.
const (
	VoteUp   Vote = "up"
	VoteDown Vote = "down"
)

// IsValid returns true if the vote is recognised.
func (v Vote) IsValid() bool {
	return v == VoteUp || v == VoteDown
}

// Transcript is an ordered sequence of turns. It is append-only except for
// the single sanctioned patch: the trailing pending turn is replaced in
// place when its submission settles.
type Transcript []Turn

// PendingIndex returns the index of the pending turn, or -1 if none exists.
func (t Transcript) PendingIndex() int {
	for i := range t {
		if t[i].Kind == TurnPending {
			return i
		}
	}
	return -1
}

// HasPending reports whether a submission is outstanding.
func (t Transcript) HasPending() bool {
	return t.PendingIndex() >= 0
}

// ValidateQuery checks question text before any network call is issued.
func ValidateQuery(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyQuery
	}
	return nil
}
