package main

import (
	"os"

	"github.com/spf13/cobra"

	"orgjet/internal/interfaces/cli/migrate"
	"orgjet/internal/interfaces/cli/seed"
	"orgjet/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orgjet",
		Short: "Orgjet - internal work request tracker",
		Long:  `Orgjet tracks work requests across teams: intake, triage, assignment and an activity feed per request.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
