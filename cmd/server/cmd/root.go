package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "Western Edge Gutters customer portal",
	Long: `Portal serves the Western Edge Gutters customer portal.

Available commands:
  serve    Start the HTTP server

Use "portal [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
