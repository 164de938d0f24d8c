package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/socketsecurity/socket-sdk-go/internal/report"
)

var issuesCmd = &cobra.Command{
	Use:   "issues <package> <version>",
	Short: "Show Socket issues for an npm package version",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSDKClient()
		if err != nil {
			return err
		}
		res, err := client.GetIssuesByNpmPackage(cmd.Context(), args[0], args[1], nil)
		if err != nil {
			return err
		}
		logCall("issues", args[0]+"@"+args[1], res.Status, res.Success)
		if !res.Success {
			return fmt.Errorf("%s: %s", res.Error, res.Cause)
		}
		color := !flagNoColor && report.IsTerminal()
		report.PrintIssues(os.Stdout, res.Data, color)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(issuesCmd)
}
