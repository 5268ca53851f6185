package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file.pdf]",
	Short: "Upload a PDF for ingestion",
	Long: `Uploads a PDF document to the backend. Text extraction, metadata
enrichment and embedding happen asynchronously server-side; the command
returns as soon as the upload is accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	msg, err := ingestService.Upload(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	cmd.Println(msg)
	return nil
}
