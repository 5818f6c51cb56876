package analyze

import (
	"os"

	"meshcheck/internal/metrics"
)

// Failure reasons reported before any check runs.
const (
	ReasonMissingFile = "Results CSV not found"
	ReasonEmptyFile   = "Empty or invalid CSV"
)

// CheckReport is one check's outcome for a scenario.
type CheckReport struct {
	Name       string
	PassText   string
	FailText   string
	Passed     bool
	Violations []string
}

// ScenarioReport is the structured outcome of analyzing one scenario.
// Rendering is a separate concern so verdicts stay testable without
// captured output.
type ScenarioReport struct {
	Scenario string
	Path     string
	Rows     int
	Reason   string
	Checks   []CheckReport
	Passed   bool
}

// AnalyzeScenario loads a scenario's metrics file and runs all three
// checks unconditionally. A missing or empty file fails the scenario
// without running checks.
func AnalyzeScenario(path, scenario string) ScenarioReport {
	report := ScenarioReport{Scenario: scenario, Path: path}

	if _, err := os.Stat(path); err != nil {
		report.Reason = ReasonMissingFile
		return report
	}

	rows, err := metrics.Load(path)
	if err != nil || len(rows) == 0 {
		report.Reason = ReasonEmptyFile
		return report
	}
	report.Rows = len(rows)

	report.Passed = true
	for _, c := range Checks() {
		passed, violations := c.Run(rows)
		report.Checks = append(report.Checks, CheckReport{
			Name:       c.Name,
			PassText:   c.PassText,
			FailText:   c.FailText,
			Passed:     passed,
			Violations: violations,
		})
		if !passed {
			report.Passed = false
		}
	}
	return report
}
