package main

import (
	"os"

	"github.com/spf13/cobra"

	"devicedesk/internal/interfaces/cli/migrate"
	"devicedesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "devicedesk",
		Short: "DeviceDesk - ticket lifecycle and notification engine",
		Long:  `DeviceDesk runs repair, buyback and refurbishing ticket workflows for device service businesses, with status auditing and customer email notifications.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
