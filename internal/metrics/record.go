// Package metrics loads simulator metrics CSVs into typed records.
package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
)

// Column names emitted by the mesh simulator.
const (
	ColTime              = "time"
	ColPartitionCount    = "partition_count"
	ColActiveBridgeCount = "active_bridge_count"
	ColDeliveryRate      = "message_delivery_rate"
	ColIsolatedNodes     = "isolated_node_count"
	ColUnreachableNodes  = "unreachable_nodes"
)

// Record is one sampled time point of a running mesh simulation, keyed by
// column name. Values stay strings; the typed accessors parse on demand.
type Record map[string]string

// Field returns the raw value of col and whether the column is present.
func (r Record) Field(col string) (string, bool) {
	v, ok := r[col]
	return v, ok
}

// Int parses col as an integer. ok is false when the column is absent or
// the value does not parse.
func (r Record) Int(col string) (int, bool) {
	v, ok := r[col]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float parses col as a float64. ok is false when the column is absent or
// the value does not parse.
func (r Record) Float(col string) (float64, bool) {
	v, ok := r[col]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Time returns the row's time column, or "unknown" when absent.
func (r Record) Time() string {
	if t, ok := r[ColTime]; ok {
		return t
	}
	return "unknown"
}

// Load reads a metrics CSV from disk. A missing file yields an empty
// sequence, not an error; callers that care check existence first.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open metrics: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads CSV rows from r. The first row is the header; each following
// row becomes one Record with values aligned positionally to the header.
// Short rows leave trailing columns absent.
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []Record
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(fields) {
				rec[col] = fields[i]
			}
		}
		rows = append(rows, rec)
	}
}
