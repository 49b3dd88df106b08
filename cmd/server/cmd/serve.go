package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/westernedge/portal/internal/app"
	"github.com/westernedge/portal/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		logging.New()

		if err := app.Run(); err != nil {
			slog.Error("server exited", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
