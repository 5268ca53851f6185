package backend

// Wire types mirror the backend's JSON contract exactly. They stay private
// to this package; the rest of the client only sees domain types.

// queryRequest is the POST /query payload.
type queryRequest struct {
	Query      string `json:"query"`
	Synthesize bool   `json:"synthesize"`
}

// querySource is one citation in a query response, ordered by evidence
// ranking.
type querySource struct {
	Text       string `json:"text"`
	Filename   string `json:"filename"`
	PageNumber int    `json:"page_number"`
}

// queryResponse is the POST /query response.
type queryResponse struct {
	Answer          string        `json:"answer"`
	Sources         []querySource `json:"sources"`
	CreatedMemoryID string        `json:"created_memory_id"`
}

// timelineEvent is one element of the GET /timeline response.
type timelineEvent struct {
	Date   string `json:"date"`
	Source string `json:"source"`
	Event  string `json:"event"`
}

// graphElement is one element of the GET /semantic_graph response.
// There is no explicit kind tag: nodes carry id/label, edges carry
// source/target. Field presence is the only discriminant, so the raw
// strings are handed to the assembly pipeline for validation.
type graphElement struct {
	Data struct {
		ID     string `json:"id"`
		Label  string `json:"label"`
		Source string `json:"source"`
		Target string `json:"target"`
	} `json:"data"`
}

// consolidateRequest is the POST /consolidate payload.
type consolidateRequest struct {
	Threshold float64 `json:"threshold"`
}

// consolidatedGroup is one group in a consolidation response.
type consolidatedGroup struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Summary     string `json:"summary"`
	MemberCount int    `json:"member_count"`
}

// consolidateResponse is the POST /consolidate response.
type consolidateResponse struct {
	Message            string              `json:"message"`
	ConsolidatedGroups []consolidatedGroup `json:"consolidated_groups"`
}

// uploadResponse is the POST /upload response.
type uploadResponse struct {
	Message string `json:"message"`
}

// feedbackRequest is the POST /feedback payload.
type feedbackRequest struct {
	MemoryID string `json:"memory_id"`
	Vote     string `json:"vote"`
}

// errorBody is the FastAPI error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}
