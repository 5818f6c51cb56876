package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"meshcheck/internal/analyze"
	"meshcheck/internal/logging"
)

var (
	analyzeCatalogPath string
	analyzeSchemaPath  string
	analyzeNoColor     bool
	analyzeLogFile     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <results-dir>",
	Short: "Analyze partition-healing scenario results",
	Long:  "analyze locates each catalog scenario's metrics CSV under the results directory, runs the failure-signature checks, and exits non-zero when any scenario fails.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New()

		cat, err := loadCatalog(analyzeCatalogPath, analyzeSchemaPath)
		if err != nil {
			return err
		}

		results, cleanup, err := newResultWriters(analyzeLogFile)
		if err != nil {
			return err
		}

		renderer := analyze.NewRenderer(colorizeStdout())
		runner := &analyze.Runner{
			Catalog:  cat,
			Renderer: renderer,
			Results:  results,
			RunID:    uuid.NewString(),
			Log:      logger,
		}

		sum, err := runner.Run(args[0])
		if err != nil {
			renderer.MissingRoot(args[0])
			cleanup()
			os.Exit(1)
		}
		cleanup()
		os.Exit(sum.ExitCode())
		return nil
	},
}

// colorizeStdout enables ANSI colors when stdout is a terminal and
// --no-color was not given.
func colorizeStdout() bool {
	if analyzeNoColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCatalogPath, "catalog", "", "Path to scenario catalog YAML (default: built-in issue-138 catalog)")
	analyzeCmd.Flags().StringVar(&analyzeSchemaPath, "schema", "schemas/catalog.cue", "Path to CUE schema for the catalog")
	analyzeCmd.Flags().BoolVar(&analyzeNoColor, "no-color", false, "Disable ANSI colors in the report")
	analyzeCmd.Flags().StringVar(&analyzeLogFile, "log-file", "", "Path to export structured results (JSONL)")
	analyzeCmd.SilenceUsage = true
}
