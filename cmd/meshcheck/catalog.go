package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	catalogPath       string
	catalogSchemaPath string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the effective scenario catalog",
	Long:  "catalog validates the scenario catalog and prints each scenario with its candidate result-file locations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(catalogPath, catalogSchemaPath)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tNAME\tCANDIDATE PATHS")
		for _, sc := range cat.Scenarios {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", sc.Key, sc.Name, strings.Join(sc.CandidatePaths(), ", "))
		}
		return tw.Flush()
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to scenario catalog YAML (default: built-in issue-138 catalog)")
	catalogCmd.Flags().StringVar(&catalogSchemaPath, "schema", "schemas/catalog.cue", "Path to CUE schema for the catalog")
	catalogCmd.SilenceUsage = true
}
