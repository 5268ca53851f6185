package domain

// TimelineEvent is a dated event extracted from an ingested document.
// Events arrive sorted by date; the client preserves backend order.
type TimelineEvent struct {
	// Date is the event date as extracted, e.g. "2024-03-01". The backend
	// sorts lexically and makes no format guarantee, so it stays a string.
	Date string

	// Source is the document the event was extracted from.
	Source string

	// Event is the truncated passage describing the event.
	Event string
}
