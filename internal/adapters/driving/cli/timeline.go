package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var timelineJSON bool

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the extracted event timeline",
	Long: `Fetches dated events extracted from the ingested documents, in the
backend's date order.`,
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().BoolVar(&timelineJSON, "json", false, "output events as JSON")
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, _ []string) error {
	if timelineService == nil {
		return errors.New("timeline service not configured")
	}

	events, err := timelineService.Events(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch timeline: %w", err)
	}

	if timelineJSON {
		data, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal events: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(events) == 0 {
		cmd.Println("No events extracted yet.")
		return nil
	}

	for _, e := range events {
		cmd.Printf("%s  %-20s %s\n", e.Date, e.Source, e.Event)
	}
	return nil
}
