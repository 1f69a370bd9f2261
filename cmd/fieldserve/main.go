package main

import (
	"os"

	"github.com/spf13/cobra"

	"fieldserve/internal/interfaces/cli/migrate"
	"fieldserve/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldserve",
		Short: "Fieldserve - field service complaint management",
		Long:  `Fieldserve manages field service complaints, technician assignments, job cards, and the live complaint board.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
