package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/socketsecurity/socket-sdk-go/internal/report"
)

var quotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "Show remaining API quota",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSDKClient()
		if err != nil {
			return err
		}
		res, err := client.GetQuota(cmd.Context(), nil)
		if err != nil {
			return err
		}
		logCall("quota", "", res.Status, res.Success)
		if !res.Success {
			return fmt.Errorf("%s: %s", res.Error, res.Cause)
		}
		report.PrintQuota(os.Stdout, res.Data)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quotaCmd)
}
