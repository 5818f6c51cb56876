package export

import (
	"encoding/json"
	"os"
)

// FileWriter appends analysis results to a JSONL file. Scenario and
// summary rows share the file; the kind field tells them apart.
type FileWriter struct {
	file *os.File
	enc  *json.Encoder
}

type fileRecord struct {
	Kind     string             `json:"kind"`
	Scenario *ScenarioResultRow `json:"scenario,omitempty"`
	Summary  *SummaryRow        `json:"summary,omitempty"`
}

// NewFileWriter creates or truncates the JSONL file at path.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileWriter{file: f, enc: json.NewEncoder(f)}, nil
}

// WriteScenario logs a scenario result row.
func (f *FileWriter) WriteScenario(row ScenarioResultRow) error {
	return f.enc.Encode(fileRecord{Kind: "scenario", Scenario: &row})
}

// WriteSummary logs the run summary row.
func (f *FileWriter) WriteSummary(row SummaryRow) error {
	return f.enc.Encode(fileRecord{Kind: "summary", Summary: &row})
}

// Close closes the underlying file.
func (f *FileWriter) Close() error {
	return f.file.Close()
}
