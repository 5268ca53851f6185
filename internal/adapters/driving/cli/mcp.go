package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/legalbrief/brief-cli/internal/adapters/driving/mcp"
	"github.com/legalbrief/brief-cli/internal/logger"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run a Model Context Protocol server",
	Long: `Runs an MCP server exposing the backend to agent hosts. Tools cover
asking cited questions, listing the extracted timeline and triggering
consolidation; the semantic graph and timeline are also published as
resources.

By default the server speaks MCP over stdio. Pass --http to serve the
streamable HTTP transport instead.`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve MCP over HTTP on this address (e.g. :8391)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	if conversationService == nil {
		return errors.New("conversation service not configured")
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Conversation:  conversationService,
		Graph:         graphService,
		Timeline:      timelineService,
		Consolidation: consolidationService,
	})
	if err != nil {
		return fmt.Errorf("create MCP server: %w", err)
	}

	if mcpHTTPAddr != "" {
		logger.Info("MCP server listening on %s", mcpHTTPAddr)
		return server.RunHTTP(cmd.Context(), mcpHTTPAddr)
	}
	return server.Run(cmd.Context())
}
