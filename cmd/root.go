package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sakibahmad/schemabridge/metadata"
	"github.com/sakibahmad/schemabridge/utils"
)

var rootCmd = &cobra.Command{
	Use:   "schemabridge",
	Short: "Bridge source-database catalogs into engine-ready schema metadata",
	Long: `schemabridge reads the catalog of a source database (PostgreSQL,
ClickHouse or MySQL) and turns it into the canonical table metadata the
semantic engine understands.

Examples:

  schemabridge check
  schemabridge tables
  schemabridge constraints
  schemabridge encode --file manifest.yaml
`,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// newMetadata builds the metadata source for the configured source type.
// DATABASE_URL comes from the environment (or .env); the source type from
// the --source flag or SOURCE_TYPE.
func newMetadata() (metadata.Metadata, error) {
	utils.LoadEnv()

	source := viper.GetString("source.type")
	if source == "" {
		source = utils.GetSourceType()
	}

	info := metadata.ConnectionInfo{URL: utils.GetDatabaseURL()}
	return metadata.New(metadata.SourceType(source), info, nil)
}

// Register subcommands
func init() {
	rootCmd.PersistentFlags().String("source", "", "Source database type (postgres, clickhouse, mysql)")
	viper.BindPFlag("source.type", rootCmd.PersistentFlags().Lookup("source"))

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(constraintsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(encodeCmd)
}
