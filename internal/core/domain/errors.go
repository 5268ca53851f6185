package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyQuery indicates a submission with blank question text.
	// Rejected before any network call is issued.
	ErrEmptyQuery = errors.New("query text is empty")

	// ErrQueryInFlight indicates a question is already awaiting an answer.
	// The transcript allows at most one outstanding submission.
	ErrQueryInFlight = errors.New("query already in flight")

	// ErrConsolidationInFlight indicates a consolidation job is already running.
	ErrConsolidationInFlight = errors.New("consolidation already in flight")

	// ErrUploadInFlight indicates a document upload is already running.
	ErrUploadInFlight = errors.New("upload already in flight")

	// ErrInvalidThreshold indicates a consolidation threshold outside (0, 1].
	ErrInvalidThreshold = errors.New("threshold must be in (0, 1]")

	// ErrUnsupportedFile indicates an upload of anything other than a PDF.
	ErrUnsupportedFile = errors.New("only PDF files are supported")

	// ErrClosed indicates an operation on a service that has been closed.
	ErrClosed = errors.New("service closed")

	// ErrNoTurn indicates a feedback vote for a transcript index that does
	// not reference an answer.
	ErrNoTurn = errors.New("no answer at transcript index")
)

// TransportError describes a failed backend call: a network-level failure
// or a non-2xx HTTP response. Status is zero when the request never
// reached the backend.
type TransportError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend unreachable: %s", e.Message)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// MalformedGraphError indicates a graph payload that cannot be assembled:
// an edge referencing a missing node, or an element whose kind cannot be
// determined. The whole assembly is rejected; there is no partial graph.
type MalformedGraphError struct {
	Reason string
}

// Error implements the error interface.
func (e *MalformedGraphError) Error() string {
	return "malformed graph payload: " + e.Reason
}

// DuplicateNodeError indicates two node records sharing an id. Node identity
// is the join key for edges, so a duplicate makes the payload ambiguous.
type DuplicateNodeError struct {
	ID string
}

// Error implements the error interface.
func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("duplicate node id %q in graph payload", e.ID)
}
