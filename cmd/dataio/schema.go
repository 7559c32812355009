package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
	"github.com/slangeveld/fmu-dataio/pkg/schema"
)

var schemaOutput string

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Schema operations",
}

// schemaDumpCmd represents the schema dump command
var schemaDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Generate the fmu_results JSON Schema",
	Long: `Generate the current fmu_results JSON Schema from the metadata model
and print it, or write it to the canonical schemas/<version>/ path.`,
	Run: func(cmd *cobra.Command, args []string) {
		info := fmuresults.SchemaInfo()
		tree, err := schema.Generate(&fmuresults.ObjectMetadata{}, info)
		if err != nil {
			fatal("Failed to generate schema", err)
		}

		raw, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			fatal("Failed to serialize schema", err)
		}
		raw = append(raw, '\n')

		if schemaOutput == "" {
			os.Stdout.Write(raw)
			return
		}

		target := schemaOutput
		if st, err := os.Stat(target); err == nil && st.IsDir() {
			target = filepath.Join(target, filepath.FromSlash(info.Path()))
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			fatal("Failed to create schema directory", err)
		}
		if err := os.WriteFile(target, raw, 0o644); err != nil {
			fatal("Failed to write schema", err)
		}
		fmt.Println("Wrote", target)
	},
}

func init() {
	schemaDumpCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "File or directory to write the schema to (default: stdout)")
	schemaCmd.AddCommand(schemaDumpCmd)
	rootCmd.AddCommand(schemaCmd)
}
