package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	configfile "github.com/legalbrief/brief-cli/internal/adapters/driven/config/file"
	"github.com/legalbrief/brief-cli/internal/adapters/driving/tui"
	"github.com/legalbrief/brief-cli/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for brief.

The TUI provides a conversational view over your ingested documents,
plus the semantic graph, the extracted event timeline, and memory
consolidation, all with keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Ask / Select
  Esc      - Back
  ctrl+u/d - Rate the latest answer
  ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// The TUI is long-running, so pick up config edits made while it is
	// open. Only the endpoint is re-read; services hold the client by
	// reference and see the change on their next request.
	if configStore != nil {
		watchCtx, watchCancel := context.WithCancel(cmd.Context())
		defer watchCancel()

		go func() {
			err := configStore.Watch(watchCtx, func() {
				if endpointFlag != "" {
					return
				}
				if endpoint := configStore.GetString(configfile.KeyEndpoint); endpoint != "" {
					backendClient.SetBaseURL(endpoint)
					logger.Debug("Backend endpoint changed: %s", endpoint)
				}
			})
			if err != nil {
				logger.Warn("config watch stopped: %v", err)
			}
		}()
	}

	ports := &tui.Ports{
		Conversation:  conversationService,
		Graph:         graphService,
		Consolidation: consolidationService,
		Timeline:      timelineService,
		Ingest:        ingestService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	// Abandon any in-flight submission when the program exits.
	defer func() {
		if conversationService != nil {
			_ = conversationService.Close()
		}
	}()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
