package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sakibahmad/schemabridge/loader"
	"github.com/sakibahmad/schemabridge/mdl"
)

var encodeFile string

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a manifest file for the engine",
	Long: `Encode a manifest YAML file into the base64 JSON transport string
the engine-handle constructor consumes.

Examples:
  schemabridge encode                       # Encode manifest.yaml
  schemabridge encode --file semantic.yaml  # Encode a specific file
`,
	Run: func(cmd *cobra.Command, args []string) {
		manifestFilePath := encodeFile
		if manifestFilePath == "" {
			manifestFilePath = "manifest.yaml"
		}

		manifest, err := loader.LoadManifestFromYAML(manifestFilePath)
		if err != nil {
			fmt.Printf("❌ Error loading manifest: %v\n", err)
			os.Exit(1)
		}

		encoded, err := mdl.EncodeManifest(manifest)
		if err != nil {
			fmt.Printf("❌ Error encoding manifest: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(encoded)
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeFile, "file", "f", "", "Manifest file (default manifest.yaml)")
}
