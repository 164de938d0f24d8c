package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/socketsecurity/socket-sdk-go/internal/audit"
	"github.com/socketsecurity/socket-sdk-go/internal/config"
	"github.com/socketsecurity/socket-sdk-go/internal/update"
	"github.com/socketsecurity/socket-sdk-go/pkg/socket"
)

var (
	flagToken         string
	flagBaseURL       string
	flagRetries       int
	flagNoColor       bool
	flagNoUpdateCheck bool
	flagDebug         bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the Socket CLI.
var rootCmd = &cobra.Command{
	Use:           "socket",
	Short:         "Query the Socket security-analysis API",
	Long:          "socket is a thin CLI over the Socket SDK: quota, repositories, package issues and patch blobs.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the Socket CLI. It should be called by the main package.
func Execute() {
	defer maybeNotifyUpdate()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "API token (or SOCKET_SECURITY_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "API base URL override")
	rootCmd.PersistentFlags().IntVar(&flagRetries, "retries", 0, "network-level retry attempts")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log requests and responses")
}

// loadFileConfig layers env over local over global config.
func loadFileConfig() config.FileConfig {
	global, _ := config.LoadGlobal()
	local, _ := config.LoadLocal(".")
	env := config.FromEnv()

	merged := global
	if local.Token != nil {
		merged.Token = local.Token
	}
	if local.BaseURL != nil {
		merged.BaseURL = local.BaseURL
	}
	if local.Retries != nil {
		merged.Retries = local.Retries
	}
	if local.NoUpdateCheck != nil {
		merged.NoUpdateCheck = local.NoUpdateCheck
	}
	if env.Token != nil {
		merged.Token = env.Token
	}
	if env.BaseURL != nil {
		merged.BaseURL = env.BaseURL
	}
	return merged
}

// newSDKClient builds a socket.Client from flags and persisted config.
func newSDKClient() (*socket.Client, error) {
	fc := loadFileConfig()
	cfg := socket.Config{
		Token:   pickString(flagToken, fc.Token, nil),
		BaseURL: pickString(flagBaseURL, fc.BaseURL, nil),
		Retries: pickInt(flagRetries, fc.Retries, nil),
		Debug:   flagDebug,
	}
	if fc.RetryDelayMs != nil {
		cfg.RetryDelay = time.Duration(*fc.RetryDelayMs) * time.Millisecond
	}
	return socket.NewClient(cfg)
}

// logCall records the API call in the local history file, best effort.
func logCall(command, target string, status int, success bool) {
	_ = audit.NewLog("").Append(audit.Record{
		Timestamp: time.Now(),
		Command:   command,
		Target:    target,
		Status:    status,
		Success:   success,
	})
}

func maybeNotifyUpdate() {
	if flagNoUpdateCheck || !loadFileConfig().IsUpdateCheckEnabled() {
		return
	}
	if latest, newer, _ := update.Check(version, false); newer {
		fmt.Fprintf(os.Stderr, "A newer socket CLI is available: %s (current %s). Run `socket upgrade`.\n", latest, version)
	}
}
