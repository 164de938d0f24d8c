package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/socketsecurity/socket-sdk-go/internal/report"
	"github.com/socketsecurity/socket-sdk-go/pkg/socket"
)

var (
	flagPerPage       int
	flagPage          int
	flagDefaultBranch string
)

var reposCmd = &cobra.Command{
	Use:   "repos <org-slug>",
	Short: "List an organization's repositories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSDKClient()
		if err != nil {
			return err
		}
		params := []socket.Param{
			{Key: "perPage", Value: positiveInt(flagPerPage)},
			{Key: "page", Value: positiveInt(flagPage)},
			{Key: "defaultBranch", Value: flagDefaultBranch},
		}
		res, err := client.GetRepoList(cmd.Context(), args[0], params, nil)
		if err != nil {
			return err
		}
		logCall("repos", args[0], res.Status, res.Success)
		if !res.Success {
			return fmt.Errorf("%s: %s", res.Error, res.Cause)
		}
		return report.PrintRepos(os.Stdout, res.Data)
	},
}

// positiveInt formats n for the query string; zero means unset and is dropped
// by the query normalizer.
func positiveInt(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func init() {
	reposCmd.Flags().IntVar(&flagPerPage, "per-page", 0, "results per page")
	reposCmd.Flags().IntVar(&flagPage, "page", 0, "page number")
	reposCmd.Flags().StringVar(&flagDefaultBranch, "default-branch", "", "filter by default branch")
	rootCmd.AddCommand(reposCmd)
}
