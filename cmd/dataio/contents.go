package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
	"github.com/slangeveld/fmu-dataio/pkg/registry"
)

// contentsCmd represents the contents command
var contentsCmd = &cobra.Command{
	Use:   "contents",
	Short: "List valid content kinds and export formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Contents:")
		for _, name := range fmuresults.ContentNames() {
			fmt.Println(" ", name)
		}
		fmt.Println("Kinds and formats:")
		for _, kind := range registry.Kinds() {
			fmt.Printf("  %-22s %s\n", kind, strings.Join(registry.Formats(kind), ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(contentsCmd)
}
