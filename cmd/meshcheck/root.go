package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "meshcheck",
	Short: "Mesh partition-healing result analyzer",
	Long:  "meshcheck scans partition/healing scenario metrics for failure signatures and reports per-scenario verdicts.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(catalogCmd)
}
