// Package cli implements the cobra command-line interface for brief.
// It is a driving adapter: commands call core services through the
// driving ports and render their results.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/legalbrief/brief-cli/internal/adapters/driven/backend"
	configfile "github.com/legalbrief/brief-cli/internal/adapters/driven/config/file"
	"github.com/legalbrief/brief-cli/internal/core/domain"
	"github.com/legalbrief/brief-cli/internal/core/ports/driving"
	"github.com/legalbrief/brief-cli/internal/core/services"
	"github.com/legalbrief/brief-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	endpointFlag string
	verboseFlag  bool
)

// Services used by the commands. Wired by initServices, or injected by
// tests before Execute.
var (
	configStore          *configfile.ConfigStore
	backendClient        *backend.Client
	conversationService  driving.ConversationService
	graphService         driving.GraphService
	consolidationService driving.ConsolidationService
	timelineService      driving.TimelineService
	ingestService        driving.IngestService
)

var rootCmd = &cobra.Command{
	Use:   "brief",
	Short: "Terminal client for the LegalBriefAI backend",
	Long: `brief is a terminal client for the LegalBriefAI document
intelligence service. Ask questions against your ingested documents,
inspect the extracted event timeline and semantic graph, upload new
PDFs, and trigger memory consolidation.

The backend endpoint is read from ~/.brief/config.toml (key "endpoint")
and can be overridden with --endpoint.`,
	PersistentPreRunE: initServices,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// initServices wires the backend client and core services. Tests inject
// their own services beforehand; in that case wiring is skipped.
func initServices(_ *cobra.Command, _ []string) error {
	if conversationService != nil {
		if verboseFlag {
			logger.SetVerbose(true)
		}
		return nil
	}

	store, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	configStore = store

	logger.SetVerbose(verboseFlag || store.GetBool(configfile.KeyVerbose))

	endpoint := endpointFlag
	if endpoint == "" {
		endpoint = store.GetString(configfile.KeyEndpoint)
	}
	backendClient = backend.NewClient(backend.Config{BaseURL: endpoint})
	logger.Debug("Backend endpoint: %s", backendClient.BaseURL())

	conversationService = services.NewConversationService(backendClient)
	graphService = services.NewGraphService(backendClient)
	consolidationService = services.NewConsolidationService(backendClient)
	timelineService = services.NewTimelineService(backendClient)
	ingestService = services.NewIngestService(backendClient)
	return nil
}

// defaultThreshold returns the configured consolidation threshold, falling
// back to the backend default.
func defaultThreshold() float64 {
	if configStore != nil {
		if v := configStore.GetFloat(configfile.KeyThreshold); v > 0 {
			return v
		}
	}
	return domain.DefaultConsolidationThreshold
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
