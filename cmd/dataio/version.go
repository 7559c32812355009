package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	dataio "github.com/slangeveld/fmu-dataio"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dataio",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dataio version %s\n", strings.TrimSpace(dataio.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
