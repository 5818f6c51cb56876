package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"meshcheck/internal/export"
)

func TestNewResultWritersNone(t *testing.T) {
	t.Setenv("GREPTIMEDB_ENDPOINT", "")
	w, cleanup, err := newResultWriters("")
	if err != nil {
		t.Fatalf("newResultWriters returned error: %v", err)
	}
	cleanup()
	if w != nil {
		t.Fatalf("expected no sink, got %T", w)
	}
}

func TestNewResultWritersLogFile(t *testing.T) {
	t.Setenv("GREPTIMEDB_ENDPOINT", "")
	path := filepath.Join(t.TempDir(), "results.jsonl")
	w, cleanup, err := newResultWriters(path)
	if err != nil {
		t.Fatalf("newResultWriters returned error: %v", err)
	}
	if _, ok := w.(*export.FileWriter); !ok {
		t.Fatalf("expected *export.FileWriter, got %T", w)
	}
	row := export.ScenarioResultRow{
		RunID:     "r1",
		Scenario:  "issue_138_uneven_partitions",
		Result:    export.ResultSkipped,
		Timestamp: time.Now().UTC(),
	}
	if err := w.WriteScenario(row); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cleanup()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected log file to be non-empty")
	}
}

func TestLoadCatalogDefaultsToBuiltIn(t *testing.T) {
	cat, err := loadCatalog("", "schemas/catalog.cue")
	if err != nil {
		t.Fatalf("loadCatalog returned error: %v", err)
	}
	if len(cat.Scenarios) != 5 {
		t.Fatalf("expected built-in catalog with 5 scenarios, got %d", len(cat.Scenarios))
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := loadCatalog(filepath.Join(t.TempDir(), "nope.yaml"), "schemas/catalog.cue"); err == nil {
		t.Fatalf("expected error for missing catalog file")
	}
}
