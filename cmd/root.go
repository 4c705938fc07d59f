package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gallery-api",
	Short: "User-account and artwork-gallery backend",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Mirror the frontend workflow: a local .env is honoured in
		// development, real environments configure the process directly.
		if os.Getenv("ENV") == "" || os.Getenv("ENV") == "development" {
			_ = godotenv.Load()
		}
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
