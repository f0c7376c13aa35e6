package main

import (
	"os"

	"github.com/spf13/cobra"

	"aayatana/internal/interfaces/cli/migrate"
	"aayatana/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aayatana",
		Short: "Aayatana - battery intelligence administration console",
		Long:  `Aayatana is the super-admin console for the battery intelligence platform: tenant onboarding, module entitlements, users, devices, and audit.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
