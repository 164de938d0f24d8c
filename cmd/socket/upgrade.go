package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Update the socket CLI to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		installed, err := selfUpdate()
		if err != nil {
			return fmt.Errorf("self-update failed: %w", err)
		}
		if installed == version {
			fmt.Println("socket is up to date")
		} else {
			fmt.Println("socket updated to", installed)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(versionCmd)
}
