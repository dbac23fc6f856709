package main

import (
	"os"

	"github.com/spf13/cobra"

	"jannivaran/internal/interfaces/cli/migrate"
	"jannivaran/internal/interfaces/cli/server"
	"jannivaran/internal/interfaces/cli/sweep"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jannivaran",
		Short: "JanNivaran - citizen grievance redressal portal",
		Long:  `JanNivaran is a grievance redressal service with a built-in HTTP server, an SLA sweep worker, and database migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		sweep.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
