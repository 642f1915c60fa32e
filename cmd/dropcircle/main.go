package main

import (
	"os"

	"github.com/spf13/cobra"

	"dropcircle/internal/interfaces/cli/migrate"
	"dropcircle/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dropcircle",
		Short: "DropCircle - closed-beta content sharing",
		Long:  `DropCircle runs the closed-beta content sharing service: visionary admissions, circles, artifact drops, and fan feedback.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
