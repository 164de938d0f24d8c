package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/socketsecurity/socket-sdk-go/internal/cache"
)

var (
	flagBlobOutput  string
	flagBlobNoCache bool
)

var blobCmd = &cobra.Command{
	Use:   "blob <hash>",
	Short: "Download a patch artifact by hash",
	Long:  "Downloads a content-addressed patch blob. Accepts SSRI (sha256-<base64>) or bare hex hash references. Contents are cached locally; content-addressed blobs never go stale.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash := args[0]
		store := cache.NewStore("")

		content, ok := "", false
		if !flagBlobNoCache {
			content, ok = store.Get(hash)
		}
		if !ok {
			client, err := newSDKClient()
			if err != nil {
				return err
			}
			content, err = client.DownloadPatchBlob(cmd.Context(), hash)
			if err != nil {
				logCall("blob", hash, 0, false)
				return err
			}
			logCall("blob", hash, 200, true)
			if !flagBlobNoCache {
				// Cache failures are not fatal; the blob was fetched.
				_ = store.Put(hash, content)
			}
		}

		if flagBlobOutput != "" {
			return os.WriteFile(flagBlobOutput, []byte(content), 0o644)
		}
		fmt.Print(content)
		return nil
	},
}

func init() {
	blobCmd.Flags().StringVar(&flagBlobOutput, "output", "", "write blob to file instead of stdout")
	blobCmd.Flags().BoolVar(&flagBlobNoCache, "no-cache", false, "bypass the local blob cache")
	rootCmd.AddCommand(blobCmd)
}
