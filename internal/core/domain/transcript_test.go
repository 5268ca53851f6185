package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript_PendingIndex(t *testing.T) {
	empty := Transcript{}
	assert.Equal(t, -1, empty.PendingIndex())
	assert.False(t, empty.HasPending())

	tr := Transcript{
		{Kind: TurnUser, Text: "What is the termination date?"},
		{Kind: TurnPending},
	}
	assert.Equal(t, 1, tr.PendingIndex())
	assert.True(t, tr.HasPending())

	settled := Transcript{
		{Kind: TurnUser, Text: "q"},
		{Kind: TurnAnswer, Text: "a"},
	}
	assert.Equal(t, -1, settled.PendingIndex())
}

func TestValidateQuery(t *testing.T) {
	assert.NoError(t, ValidateQuery("What is the notice period?"))
	assert.ErrorIs(t, ValidateQuery(""), ErrEmptyQuery)
	assert.ErrorIs(t, ValidateQuery("   \t\n"), ErrEmptyQuery)
}

func TestValidateThreshold(t *testing.T) {
	assert.NoError(t, ValidateThreshold(0.75))
	assert.NoError(t, ValidateThreshold(1.0))
	assert.ErrorIs(t, ValidateThreshold(0), ErrInvalidThreshold)
	assert.ErrorIs(t, ValidateThreshold(-0.5), ErrInvalidThreshold)
	assert.ErrorIs(t, ValidateThreshold(1.5), ErrInvalidThreshold)
}

func TestVote_IsValid(t *testing.T) {
	assert.True(t, VoteUp.IsValid())
	assert.True(t, VoteDown.IsValid())
	assert.False(t, Vote("sideways").IsValid())
}

func TestTransportError_Error(t *testing.T) {
	withStatus := &TransportError{Status: 500, Message: "internal error"}
	assert.Contains(t, withStatus.Error(), "500")
	assert.Contains(t, withStatus.Error(), "internal error")

	network := &TransportError{Message: "connection refused"}
	assert.Contains(t, network.Error(), "unreachable")
}
