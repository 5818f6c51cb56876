package main

import (
	"time"

	"github.com/spf13/cobra"

	"meshcheck/internal/watch"
)

var (
	watchCatalogPath string
	watchSchemaPath  string
	watchInterval    time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <results-dir>",
	Short: "Live dashboard over a results directory",
	Long:  "watch re-analyzes the scenario catalog on an interval and renders verdicts in a terminal dashboard, useful while the test harness is still running.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(watchCatalogPath, watchSchemaPath)
		if err != nil {
			return err
		}
		return watch.Run(cat, args[0], watchInterval)
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchCatalogPath, "catalog", "", "Path to scenario catalog YAML (default: built-in issue-138 catalog)")
	watchCmd.Flags().StringVar(&watchSchemaPath, "schema", "schemas/catalog.cue", "Path to CUE schema for the catalog")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 2*time.Second, "Re-analysis interval (e.g. 500ms, 5s)")
	watchCmd.SilenceUsage = true
}
