package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var constraintsCmd = &cobra.Command{
	Use:   "constraints",
	Short: "List relational constraints discovered in the source catalog",
	Run: func(cmd *cobra.Command, args []string) {
		meta, err := newMetadata()
		if err != nil {
			fmt.Printf("❌ Error connecting to source: %v\n", err)
			os.Exit(1)
		}

		constraints, err := meta.GetConstraints(context.Background())
		if err != nil {
			fmt.Printf("❌ Error reading source catalog: %v\n", err)
			os.Exit(1)
		}

		if len(constraints) == 0 {
			fmt.Println("📋 No constraints reported by this source")
			return
		}

		blue := color.New(color.FgBlue, color.Bold)

		fmt.Println("📋 Source Constraints")
		fmt.Println(strings.Repeat("=", 60))
		for i, c := range constraints {
			fmt.Printf("%d. ", i+1)
			blue.Printf("%s", c.Name)
			fmt.Printf("  %s.%s -> %s.%s\n", c.Table, c.Column, c.ReferencedTable, c.ReferencedColumn)
		}

		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("📊 Summary: %d constraints\n", len(constraints))
	},
}
