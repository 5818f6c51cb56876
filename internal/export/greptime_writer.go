package export

import (
	"context"
	"log"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"
)

// greptimeClient abstracts the ingester client for testing.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter writes analysis results to GreptimeDB via the ingester
// client, so CI runs accumulate in queryable tables.
type GreptimeDBWriter struct {
	client       greptimeClient
	resultTable  string
	summaryTable string
}

// NewGreptimeDBWriter connects to a GreptimeDB endpoint. Tables are
// auto-created on first write.
func NewGreptimeDBWriter(host, database string) (*GreptimeDBWriter, error) {
	cfg := greptime.NewConfig(host).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &GreptimeDBWriter{
		client:       client,
		resultTable:  "meshcheck_scenario_results",
		summaryTable: "meshcheck_run_summary",
	}, nil
}

// WriteScenario inserts a single scenario result row.
func (w *GreptimeDBWriter) WriteScenario(row ScenarioResultRow) error {
	tbl, err := table.New(w.resultTable)
	if err != nil {
		return err
	}
	if err := tbl.AddTagColumn("run_id", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddTagColumn("scenario", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("result", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("reason", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("rows", types.INT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("violations", types.INT64); err != nil {
		return err
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return err
	}
	if err := tbl.AddRow(row.RunID, row.Scenario, row.Result, row.Reason,
		int64(row.Rows), int64(row.Violations), row.Timestamp); err != nil {
		return err
	}

	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		log.Printf("[GreptimeDBWriter] scenario write failed: %v", err)
		return err
	}
	return nil
}

// WriteSummary inserts the run summary row.
func (w *GreptimeDBWriter) WriteSummary(row SummaryRow) error {
	tbl, err := table.New(w.summaryTable)
	if err != nil {
		return err
	}
	if err := tbl.AddTagColumn("run_id", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("analyzed", types.INT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("passed", types.INT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("failed", types.INT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("skipped", types.INT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("verdict", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return err
	}
	if err := tbl.AddRow(row.RunID, int64(row.Analyzed), int64(row.Passed),
		int64(row.Failed), int64(row.Skipped), row.Verdict, row.Timestamp); err != nil {
		return err
	}

	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		log.Printf("[GreptimeDBWriter] summary write failed: %v", err)
		return err
	}
	return nil
}
