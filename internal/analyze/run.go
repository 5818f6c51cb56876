package analyze

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"meshcheck/internal/catalog"
	"meshcheck/internal/export"
)

// Run verdict texts and the failure patterns listed when any scenario fails.
const (
	VerdictNotPresent   = "Issue #138 is NOT present (or is fixed)"
	VerdictMayBePresent = "Issue #138 MAY be present"
)

// FailurePatterns describes the signatures the checks look for.
var FailurePatterns = []string{
	"Multiple bridges after healing",
	"Low message delivery rates",
	"Isolated or unreachable nodes",
}

// Summary accumulates scenario outcomes for one run.
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
}

// Analyzed counts scenarios that were actually checked.
func (s Summary) Analyzed() int { return s.Passed + s.Failed }

// ExitCode maps the summary onto a process exit code.
func (s Summary) ExitCode() int {
	if s.Failed == 0 {
		return 0
	}
	return 1
}

// Verdict returns the run's overall verdict text.
func (s Summary) Verdict() string {
	if s.Failed == 0 {
		return VerdictNotPresent
	}
	return VerdictMayBePresent
}

// Runner walks a scenario catalog over a results root, rendering a report
// and optionally exporting structured result rows.
type Runner struct {
	Catalog  catalog.Catalog
	Renderer *Renderer
	Results  export.ReportWriter
	RunID    string
	Log      *slog.Logger
}

// Run analyzes every catalog scenario under root. The returned error is
// non-nil only when root itself does not exist; scenario-level problems
// are folded into the Summary.
func (r *Runner) Run(root string) (Summary, error) {
	if _, err := os.Stat(root); err != nil {
		return Summary{}, fmt.Errorf("results directory not found: %s", root)
	}

	r.Renderer.Header(root)

	var sum Summary
	for _, sc := range r.Catalog.Scenarios {
		path, ok := sc.Locate(root)
		if !ok {
			sum.Skipped++
			r.Renderer.Skip(sc.Name)
			r.exportScenario(export.ScenarioResultRow{
				Scenario: sc.Name,
				Result:   export.ResultSkipped,
			})
			continue
		}

		rep := AnalyzeScenario(path, sc.Name)
		r.Renderer.Scenario(rep)

		result := export.ResultPassed
		if rep.Passed {
			sum.Passed++
		} else {
			sum.Failed++
			result = export.ResultFailed
		}
		r.exportScenario(export.ScenarioResultRow{
			Scenario:   rep.Scenario,
			Path:       rep.Path,
			Result:     result,
			Reason:     rep.Reason,
			Rows:       rep.Rows,
			Violations: countViolations(rep),
		})
	}

	r.Renderer.Summary(sum)
	r.exportSummary(sum)
	return sum, nil
}

func countViolations(rep ScenarioReport) int {
	n := 0
	for _, c := range rep.Checks {
		n += len(c.Violations)
	}
	return n
}

func (r *Runner) exportScenario(row export.ScenarioResultRow) {
	if r.Results == nil {
		return
	}
	row.RunID = r.RunID
	row.Timestamp = time.Now().UTC()
	if err := r.Results.WriteScenario(row); err != nil && r.Log != nil {
		r.Log.Warn("scenario export failed", "scenario", row.Scenario, "error", err)
	}
}

func (r *Runner) exportSummary(sum Summary) {
	if r.Results == nil {
		return
	}
	row := export.SummaryRow{
		RunID:     r.RunID,
		Analyzed:  sum.Analyzed(),
		Passed:    sum.Passed,
		Failed:    sum.Failed,
		Skipped:   sum.Skipped,
		Verdict:   sum.Verdict(),
		Timestamp: time.Now().UTC(),
	}
	if err := r.Results.WriteSummary(row); err != nil && r.Log != nil {
		r.Log.Warn("summary export failed", "error", err)
	}
}
