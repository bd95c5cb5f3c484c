package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sakibahmad/schemabridge/catalog"
)

var tablesDetailed bool

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List tables discovered in the source catalog",
	Long: `List the tables of the configured source database in canonical form.

Examples:
  schemabridge tables                  # Summary listing
  schemabridge tables --detailed       # Include columns and types
  schemabridge tables --source mysql   # Pick the source variant
`,
	Run: func(cmd *cobra.Command, args []string) {
		meta, err := newMetadata()
		if err != nil {
			fmt.Printf("❌ Error connecting to source: %v\n", err)
			os.Exit(1)
		}

		tables, err := meta.GetTableList(context.Background())
		if err != nil {
			fmt.Printf("❌ Error reading source catalog: %v\n", err)
			os.Exit(1)
		}

		if len(tables) == 0 {
			fmt.Println("📋 No tables found in source catalog")
			return
		}

		showTables(tables, tablesDetailed)
	},
}

func init() {
	tablesCmd.Flags().BoolVarP(&tablesDetailed, "detailed", "d", false, "Show columns and types")
}

func showTables(tables []catalog.Table, detailed bool) {
	blue := color.New(color.FgBlue, color.Bold)
	cyan := color.New(color.FgCyan)

	fmt.Println("📋 Source Tables")
	fmt.Println(strings.Repeat("=", 60))

	totalColumns := 0
	for i, table := range tables {
		totalColumns += len(table.Columns)

		fmt.Printf("%d. ", i+1)
		blue.Printf("%s", table.Name)
		fmt.Printf(" (%d columns)\n", len(table.Columns))

		if table.Description != "" {
			cyan.Printf("   💬 %s\n", table.Description)
		}
		if table.PrimaryKey != "" {
			cyan.Printf("   🔑 Primary key: %s\n", table.PrimaryKey)
		}

		if detailed {
			for _, col := range table.Columns {
				marker := " "
				if col.Type == catalog.TypeUnknown {
					marker = "⚠️"
				}
				cyan.Printf("   %s %-30s %s\n", marker, col.Name, col.Type)
			}
		}
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("📊 Summary: %d tables, %d columns\n", len(tables), totalColumns)
}
