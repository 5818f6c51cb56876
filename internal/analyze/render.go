// Renderer prints human-friendly, colorized analysis reports.
package analyze

import (
	"fmt"
	"io"
	"os"
)

const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[0;31m"
	colorGreen  = "\x1b[0;32m"
	colorYellow = "\x1b[1;33m"
	colorBlue   = "\x1b[0;34m"
)

const banner = "========================================"

// Renderer writes the per-scenario and summary report blocks.
type Renderer struct {
	out      io.Writer
	colorize bool
}

// NewRenderer creates a Renderer writing to os.Stdout.
func NewRenderer(colorize bool) *Renderer {
	return &Renderer{out: os.Stdout, colorize: colorize}
}

func (r *Renderer) paint(color, s string) string {
	if !r.colorize {
		return s
	}
	return color + s + colorReset
}

// Header prints the run banner and the results root being analyzed.
func (r *Renderer) Header(root string) {
	fmt.Fprintln(r.out, r.paint(colorBlue, banner))
	fmt.Fprintln(r.out, r.paint(colorBlue, "Issue #138 Results Analysis"))
	fmt.Fprintln(r.out, r.paint(colorBlue, banner))
	fmt.Fprintf(r.out, "Results directory: %s\n", root)
}

// MissingRoot reports a results root that does not exist.
func (r *Renderer) MissingRoot(root string) {
	fmt.Fprintln(r.out, r.paint(colorRed, "Error: Results directory not found: "+root))
}

// Skip reports a scenario with no located results file.
func (r *Renderer) Skip(scenario string) {
	fmt.Fprintf(r.out, "\n%s\n", r.paint(colorYellow, "⚠ SKIP: "+scenario+" (no results found)"))
}

// Scenario prints one scenario's report block.
func (r *Renderer) Scenario(rep ScenarioReport) {
	fmt.Fprintf(r.out, "\n%s\n", r.paint(colorBlue, "Analyzing: "+rep.Scenario))

	if rep.Reason != "" {
		fmt.Fprintln(r.out, r.paint(colorRed, "✗ FAIL: "+rep.Reason))
		return
	}

	fmt.Fprintf(r.out, "  Loaded %d data points\n", rep.Rows)

	for _, c := range rep.Checks {
		if c.Passed {
			fmt.Fprintln(r.out, r.paint(colorGreen, "✓ "+c.PassText))
			continue
		}
		fmt.Fprintln(r.out, r.paint(colorRed, "✗ "+c.FailText))
		for _, v := range c.Violations {
			fmt.Fprintln(r.out, v)
		}
	}

	if rep.Passed {
		fmt.Fprintln(r.out, r.paint(colorGreen, "✓ All checks PASSED"))
	} else {
		fmt.Fprintln(r.out, r.paint(colorRed, "✗ Some checks FAILED"))
	}
}

// Summary prints the final run summary block.
func (r *Renderer) Summary(s Summary) {
	fmt.Fprintf(r.out, "\n%s\n", r.paint(colorBlue, banner))
	fmt.Fprintln(r.out, r.paint(colorBlue, "Analysis Summary"))
	fmt.Fprintln(r.out, r.paint(colorBlue, banner))
	fmt.Fprintf(r.out, "Scenarios Analyzed: %d\n", s.Analyzed())
	fmt.Fprintln(r.out, r.paint(colorGreen, fmt.Sprintf("Passed: %d", s.Passed)))
	fmt.Fprintln(r.out, r.paint(colorRed, fmt.Sprintf("Failed: %d", s.Failed)))

	if s.Failed == 0 {
		fmt.Fprintf(r.out, "\n%s\n", r.paint(colorGreen, "✓ All scenarios PASSED"))
		fmt.Fprintln(r.out, VerdictNotPresent)
		return
	}
	fmt.Fprintf(r.out, "\n%s\n", r.paint(colorRed, "✗ Some scenarios FAILED"))
	fmt.Fprintln(r.out, VerdictMayBePresent)
	fmt.Fprintln(r.out, "\nCommon issue patterns detected:")
	for _, p := range FailurePatterns {
		fmt.Fprintln(r.out, "- "+p)
	}
}
