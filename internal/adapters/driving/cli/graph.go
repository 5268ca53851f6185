package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/legalbrief/brief-cli/internal/core/domain"
)

var graphJSON bool

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Fetch and assemble the semantic graph",
	Long: `Fetches the raw semantic graph payload from the backend and assembles
it into a validated node/edge model with initial layout coordinates.
Malformed payloads (dangling edges, duplicate node ids) are rejected
whole rather than rendered partially.`,
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().BoolVar(&graphJSON, "json", false, "output the model as JSON")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, _ []string) error {
	if graphService == nil {
		return errors.New("graph service not configured")
	}

	model, err := graphService.Refresh(cmd.Context())
	if err != nil {
		return fmt.Errorf("graph unavailable: %w", err)
	}

	if graphJSON {
		return outputGraphJSON(cmd, model)
	}
	return outputGraphText(cmd, model)
}

func outputGraphJSON(cmd *cobra.Command, model *domain.GraphModel) error {
	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal graph: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputGraphText(cmd *cobra.Command, model *domain.GraphModel) error {
	cmd.Printf("Graph: %d nodes, %d edges\n", len(model.Nodes), len(model.Edges))
	cmd.Println()

	cmd.Println("Nodes:")
	for _, id := range model.NodeIDs() {
		node := model.Nodes[id]
		cmd.Printf("  %s  %s  (%.0f, %.0f)\n", id, node.Label, node.Position.X, node.Position.Y)
	}

	if len(model.Edges) > 0 {
		cmd.Println()
		cmd.Println("Edges:")
		for _, edge := range model.Edges {
			cmd.Printf("  %s -> %s\n", edge.Source, edge.Target)
		}
	}
	return nil
}
