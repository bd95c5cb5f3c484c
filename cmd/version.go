package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the source engine version",
	Run: func(cmd *cobra.Command, args []string) {
		meta, err := newMetadata()
		if err != nil {
			fmt.Printf("❌ Error connecting to source: %v\n", err)
			os.Exit(1)
		}

		version, err := meta.GetVersion(context.Background())
		if err != nil {
			fmt.Printf("❌ Error getting source version: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(version)
	},
}
