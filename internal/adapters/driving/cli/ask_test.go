package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legalbrief/brief-cli/internal/core/domain"
)

func TestAskCommand_PrintsAnswerWithSources(t *testing.T) {
	svcs := setupTestServices(t)
	svcs.conversation.answer = domain.Answer{
		Text: "The NDA was signed by Acme Corp on 2023-04-12.",
		Sources: []domain.Citation{
			{Filename: "nda.pdf", PageNumber: 3, Snippet: "executed by Acme Corp"},
		},
		MemoryID: "m42",
	}

	out, err := executeCommand(t, "ask", "Who signed the NDA?")

	require.NoError(t, err)
	assert.Contains(t, out, "The NDA was signed by Acme Corp on 2023-04-12.")
	assert.Contains(t, out, "Sources:")
	assert.Contains(t, out, "[1] nda.pdf p.3: executed by Acme Corp")
}

func TestAskCommand_JSONOutput(t *testing.T) {
	svcs := setupTestServices(t)
	svcs.conversation.answer = domain.Answer{Text: "Answer text", MemoryID: "m7"}

	out, err := executeCommand(t, "ask", "--json", "question")
	t.Cleanup(func() { askJSON = false })

	require.NoError(t, err)
	assert.Contains(t, out, `"answer": "Answer text"`)
	assert.Contains(t, out, `"memory_id": "m7"`)
}

func TestAskCommand_BlankQuestionFails(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "ask", "   ")

	assert.ErrorIs(t, err, domain.ErrEmptyQuery)
}

func TestAskCommand_TransportFailureBecomesError(t *testing.T) {
	svcs := setupTestServices(t)
	svcs.conversation.queryErr = &domain.TransportError{Status: 500, Message: "synthesis failed"}

	_, err := executeCommand(t, "ask", "question")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "synthesis failed")
}
