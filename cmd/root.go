package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version string = "dev"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "insightedge",
	Short: "AI business analyst backend for tabular data",
	Long: `InsightEdge is the backend for an interactive analyst assistant:
upload CSV data, chat with an AI analyst, and get ranked insights and
summary metrics over a JSON API.`,
	Version: version,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
