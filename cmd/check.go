package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sakibahmad/schemabridge/metadata"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check source database connectivity",
	Long: `Check that the configured source database is reachable.

This command will:
- Verify source database connectivity
- Report the source engine version

Examples:
  schemabridge check                    # Check the configured source
  schemabridge check --timeout 10s      # Set custom timeout
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := checkSource(); err != nil {
			fmt.Printf("❌ Source check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Source check completed successfully")
	},
}

var checkTimeout time.Duration

func init() {
	checkCmd.Flags().DurationVarP(&checkTimeout, "timeout", "t", 10*time.Second, "Timeout for connectivity check")
}

func checkSource() error {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	meta, err := newMetadata()
	if err != nil {
		return err
	}

	version, err := meta.GetVersion(ctx)
	if err != nil {
		var connErr *metadata.ConnectivityError
		if errors.As(err, &connErr) {
			return fmt.Errorf("source unreachable: %v", err)
		}
		return err
	}

	fmt.Printf("📊 Source version: %s\n", version)
	return nil
}
