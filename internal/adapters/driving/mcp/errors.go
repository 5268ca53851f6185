package mcp

import "errors"

// ErrMissingConversationService is returned when the conversation service is not provided.
var ErrMissingConversationService = errors.New("mcp: conversation service is required")

// ErrAnswerAbandoned is returned when the conversation closes before an
// outstanding question settles.
var ErrAnswerAbandoned = errors.New("mcp: conversation closed before the answer arrived")
