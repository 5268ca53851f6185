package domain

// DefaultConsolidationThreshold matches the backend's default grouping
// threshold.
const DefaultConsolidationThreshold = 0.75

// ConsolidatedGroup is one group of related memory chunks produced by a
// consolidation job.
type ConsolidatedGroup struct {
	// ID is the backend-assigned group identifier.
	ID string

	// Source is the document the group's chunks came from.
	Source string

	// Summary describes the consolidated memory.
	Summary string

	// MemberCount is the number of chunks in the group.
	MemberCount int
}

// ConsolidationResult is the outcome of one consolidation job. The client
// keeps at most the most recent result; a new run replaces it.
type ConsolidationResult struct {
	Message string
	Groups  []ConsolidatedGroup
}

// ValidateThreshold checks a consolidation threshold before any network
// call is issued. The backend treats the threshold as a similarity cutoff,
// so it must be in (0, 1].
func ValidateThreshold(threshold float64) error {
	if threshold <= 0 || threshold > 1 {
		return ErrInvalidThreshold
	}
	return nil
}
