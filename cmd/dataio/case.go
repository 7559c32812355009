package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slangeveld/fmu-dataio/internal/config"
	"github.com/slangeveld/fmu-dataio/pkg/export"
)

var (
	casePath        string
	caseName        string
	caseUser        string
	caseDescription []string
)

// caseCmd represents the case command
var caseCmd = &cobra.Command{
	Use:   "case",
	Short: "Case-level operations",
}

// caseInitCmd represents the case init command
var caseInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Establish a case metadata document",
	Long: `Create the case-level metadata document at <case-path>/share/metadata/.
The operation is idempotent: an already established case is left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			fatal("Failed to load global configuration", err)
		}

		cc := &export.CreateCase{
			CasePath:    casePath,
			CaseName:    caseName,
			User:        caseUser,
			Description: caseDescription,
		}
		path, err := cc.Run(cfg)
		if err != nil {
			fatal("Failed to establish case", err)
		}

		fmt.Println("Case metadata at", path)
	},
}

func init() {
	caseInitCmd.Flags().StringVar(&casePath, "case-path", "", "Case root directory (required)")
	caseInitCmd.Flags().StringVar(&caseName, "case-name", "", "Case name (required)")
	caseInitCmd.Flags().StringVar(&caseUser, "user", "", "User identity (default: detected)")
	caseInitCmd.Flags().StringArrayVar(&caseDescription, "description", nil, "Description line, repeatable")
	_ = caseInitCmd.MarkFlagRequired("case-path")
	_ = caseInitCmd.MarkFlagRequired("case-name")
	caseCmd.AddCommand(caseInitCmd)
	rootCmd.AddCommand(caseCmd)
}
