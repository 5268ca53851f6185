package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var consolidateThreshold float64

var consolidateCmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Run a memory consolidation job",
	Long: `Triggers a consolidation job on the backend, grouping related memory
chunks into higher-level summaries. Each run re-executes the job
server-side and replaces the previous result.`,
	RunE: runConsolidate,
}

func init() {
	consolidateCmd.Flags().Float64VarP(&consolidateThreshold, "threshold", "t", 0,
		"similarity threshold in (0, 1] (defaults to config or 0.75)")
	rootCmd.AddCommand(consolidateCmd)
}

func runConsolidate(cmd *cobra.Command, _ []string) error {
	if consolidationService == nil {
		return errors.New("consolidation service not configured")
	}

	threshold := consolidateThreshold
	if threshold == 0 {
		threshold = defaultThreshold()
	}

	result, err := consolidationService.Run(cmd.Context(), threshold)
	if err != nil {
		return fmt.Errorf("consolidation failed: %w", err)
	}

	cmd.Println(result.Message)
	for _, group := range result.Groups {
		cmd.Printf("  %-20s %3d chunks  %s\n", group.Source, group.MemberCount, group.Summary)
	}
	return nil
}
