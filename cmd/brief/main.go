// Command brief is a terminal client for the LegalBriefAI backend.
package main

import (
	"os"

	"github.com/legalbrief/brief-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
