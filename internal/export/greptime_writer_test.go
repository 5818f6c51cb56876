package export

import (
	"context"
	"testing"
	"time"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
)

type mockGreptimeClient struct {
	table *table.Table
}

func (m *mockGreptimeClient) Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error) {
	if len(tables) > 0 {
		m.table = tables[0]
	}
	return &gpb.GreptimeResponse{}, nil
}

func TestGreptimeWriterScenarioRow(t *testing.T) {
	m := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: m, resultTable: "meshcheck_scenario_results"}

	row := ScenarioResultRow{
		RunID:      "r1",
		Scenario:   "issue_138_stress_partition",
		Result:     ResultFailed,
		Reason:     "",
		Rows:       20,
		Violations: 2,
		Timestamp:  time.Unix(0, 0).UTC(),
	}
	if err := w.WriteScenario(row); err != nil {
		t.Fatalf("WriteScenario: %v", err)
	}
	if m.table == nil {
		t.Fatalf("expected table to be captured")
	}
	vals := m.table.GetRows().Rows[0].Values
	if got := vals[0].GetStringValue(); got != "r1" {
		t.Fatalf("run_id = %s, want r1", got)
	}
	if got := vals[1].GetStringValue(); got != "issue_138_stress_partition" {
		t.Fatalf("scenario = %s, want issue_138_stress_partition", got)
	}
	if got := vals[2].GetStringValue(); got != ResultFailed {
		t.Fatalf("result = %s, want %s", got, ResultFailed)
	}
}

func TestGreptimeWriterSummaryRow(t *testing.T) {
	m := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: m, summaryTable: "meshcheck_run_summary"}

	row := SummaryRow{
		RunID:     "r1",
		Analyzed:  5,
		Passed:    4,
		Failed:    1,
		Verdict:   "issue MAY be present",
		Timestamp: time.Unix(0, 0).UTC(),
	}
	if err := w.WriteSummary(row); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	if m.table == nil {
		t.Fatalf("expected table to be captured")
	}
	vals := m.table.GetRows().Rows[0].Values
	if got := vals[0].GetStringValue(); got != "r1" {
		t.Fatalf("run_id = %s, want r1", got)
	}
	if got := vals[1].GetI64Value(); got != 5 {
		t.Fatalf("analyzed = %d, want 5", got)
	}
}
