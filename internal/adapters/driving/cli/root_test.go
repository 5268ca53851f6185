package cli

import (
	"bytes"
	"testing"
)

// testServices bundles the mocks injected into the package service vars.
type testServices struct {
	conversation  *mockConversation
	graph         *mockGraph
	timeline      *mockTimeline
	consolidation *mockConsolidation
	ingest        *mockIngest
}

// setupTestServices injects mock services so initServices skips wiring.
// The vars are reset when the test finishes.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	svcs := &testServices{
		conversation:  newMockConversation(),
		graph:         &mockGraph{},
		timeline:      &mockTimeline{},
		consolidation: &mockConsolidation{},
		ingest:        &mockIngest{},
	}

	conversationService = svcs.conversation
	graphService = svcs.graph
	timelineService = svcs.timeline
	consolidationService = svcs.consolidation
	ingestService = svcs.ingest

	t.Cleanup(func() {
		conversationService = nil
		graphService = nil
		timelineService = nil
		consolidationService = nil
		ingestService = nil
		configStore = nil
		backendClient = nil
	})

	return svcs
}

// executeCommand runs the root command with the given args and captures
// its combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}
