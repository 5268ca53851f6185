package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/legalbrief/brief-cli/internal/core/domain"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question against the ingested documents",
	Long: `Submits a natural-language question to the backend, which retrieves
the most relevant document passages and synthesises a cited answer.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if conversationService == nil {
		return errors.New("conversation service not configured")
	}

	sub := conversationService.Subscribe()
	if err := conversationService.Submit(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("submit question: %w", err)
	}

	// Wait for the pending turn to settle.
	transcript := conversationService.Transcript()
	for transcript.HasPending() {
		if _, ok := <-sub; !ok {
			return errors.New("conversation closed before the answer arrived")
		}
		transcript = conversationService.Transcript()
	}

	last := transcript[len(transcript)-1]
	if last.Kind == domain.TurnError {
		return errors.New(last.Text)
	}

	if askJSON {
		return outputAnswerJSON(cmd, last)
	}
	return outputAnswerText(cmd, last)
}

func outputAnswerJSON(cmd *cobra.Command, turn domain.Turn) error {
	payload := struct {
		Answer   string            `json:"answer"`
		Sources  []domain.Citation `json:"sources"`
		MemoryID string            `json:"memory_id,omitempty"`
	}{turn.Text, turn.Sources, turn.MemoryID}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnswerText(cmd *cobra.Command, turn domain.Turn) error {
	cmd.Println(turn.Text)

	if len(turn.Sources) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for i, src := range turn.Sources {
			cmd.Printf("  [%d] %s p.%d: %s\n", i+1, src.Filename, src.PageNumber, src.Snippet)
		}
	}
	return nil
}
