package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/socketsecurity/socket-sdk-go/internal/audit"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent API calls made by this CLI",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := audit.NewLog("").LoadHistory()
		if err != nil {
			fmt.Println("No call history yet")
			return nil
		}
		if flagHistoryLimit > 0 && len(records) > flagHistoryLimit {
			records = records[len(records)-flagHistoryLimit:]
		}
		for _, r := range records {
			outcome := "ok"
			if !r.Success {
				outcome = "failed"
			}
			fmt.Fprintf(os.Stdout, "%s  %-8s %-40s %3d  %s\n",
				r.Timestamp.Format("2006-01-02 15:04:05"), r.Command, r.Target, r.Status, outcome)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "max records to show")
	rootCmd.AddCommand(historyCmd)
}
