// Package export persists structured analysis results to optional sinks.
// Sinks never influence verdicts; a failed write is the caller's to log.
package export

import "time"

// Scenario result classifications.
const (
	ResultPassed  = "passed"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

// ScenarioResultRow is one scenario's outcome in a run.
type ScenarioResultRow struct {
	RunID      string    `json:"run_id"`
	Scenario   string    `json:"scenario"`
	Path       string    `json:"path,omitempty"`
	Result     string    `json:"result"`
	Reason     string    `json:"reason,omitempty"`
	Rows       int       `json:"rows"`
	Violations int       `json:"violations"`
	Timestamp  time.Time `json:"ts"`
}

// SummaryRow is the terminal summary of a run.
type SummaryRow struct {
	RunID     string    `json:"run_id"`
	Analyzed  int       `json:"analyzed"`
	Passed    int       `json:"passed"`
	Failed    int       `json:"failed"`
	Skipped   int       `json:"skipped"`
	Verdict   string    `json:"verdict"`
	Timestamp time.Time `json:"ts"`
}

// ReportWriter receives analysis results as they are produced.
type ReportWriter interface {
	WriteScenario(row ScenarioResultRow) error
	WriteSummary(row SummaryRow) error
}

// MultiWriter fans results out to several writers. Writes continue past
// individual failures; the first error is returned.
type MultiWriter struct {
	writers []ReportWriter
}

// NewMultiWriter wraps writers into a single ReportWriter.
func NewMultiWriter(writers ...ReportWriter) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteScenario forwards the row to all writers.
func (m *MultiWriter) WriteScenario(row ScenarioResultRow) error {
	var first error
	for _, w := range m.writers {
		if err := w.WriteScenario(row); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// WriteSummary forwards the row to all writers.
func (m *MultiWriter) WriteSummary(row SummaryRow) error {
	var first error
	for _, w := range m.writers {
		if err := w.WriteSummary(row); err != nil && first == nil {
			first = err
		}
	}
	return first
}
