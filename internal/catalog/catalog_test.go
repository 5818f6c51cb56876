package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltInCatalog(t *testing.T) {
	c := BuiltIn()
	keys := []string{
		"rapid_partition_cycles",
		"message_routing",
		"uneven_partitions",
		"stress_partition",
		"cascade_healing",
	}
	if len(c.Scenarios) != len(keys) {
		t.Fatalf("expected %d scenarios, got %d", len(keys), len(c.Scenarios))
	}
	for i, k := range keys {
		s := c.Scenarios[i]
		if s.Key != k {
			t.Fatalf("scenario %d expected key %s got %s", i, k, s.Key)
		}
		if s.Name != "issue_138_"+k {
			t.Fatalf("scenario %d unexpected name %s", i, s.Name)
		}
	}
}

func TestCandidatePathOrder(t *testing.T) {
	s := Scenario{Key: "cascade_healing", Name: "issue_138_cascade_healing"}
	paths := s.CandidatePaths()
	if len(paths) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(paths))
	}
	if paths[0] != filepath.Join("issue_138_cascade_healing", "metrics.csv") {
		t.Fatalf("unexpected first candidate %s", paths[0])
	}
	if paths[1] != "issue_138_cascade_healing.csv" {
		t.Fatalf("unexpected second candidate %s", paths[1])
	}
}

func TestLocatePrefersDirectoryLayout(t *testing.T) {
	root := t.TempDir()
	s := Scenario{Key: "message_routing", Name: "issue_138_message_routing"}

	if _, ok := s.Locate(root); ok {
		t.Fatalf("empty root should not locate anything")
	}

	flat := filepath.Join(root, "issue_138_message_routing.csv")
	if err := os.WriteFile(flat, []byte("time\n"), 0o644); err != nil {
		t.Fatalf("write flat file: %v", err)
	}
	p, ok := s.Locate(root)
	if !ok || p != flat {
		t.Fatalf("expected flat layout %s, got %s ok=%v", flat, p, ok)
	}

	dir := filepath.Join(root, "issue_138_message_routing")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	nested := filepath.Join(dir, "metrics.csv")
	if err := os.WriteFile(nested, []byte("time\n"), 0o644); err != nil {
		t.Fatalf("write nested file: %v", err)
	}
	p, ok = s.Locate(root)
	if !ok || p != nested {
		t.Fatalf("expected nested layout %s, got %s ok=%v", nested, p, ok)
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "catalog.yaml")
	yaml := `
scenarios:
  - key: cascade_healing
  - key: custom_case
    name: my_custom_case
    paths:
      - custom/results.csv
`
	if err := os.WriteFile(cfg, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	c, err := Load(cfg, "../../schemas/catalog.cue")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(c.Scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(c.Scenarios))
	}
	if c.Scenarios[0].Name != "issue_138_cascade_healing" {
		t.Fatalf("default name not applied: %s", c.Scenarios[0].Name)
	}
	if c.Scenarios[1].Name != "my_custom_case" {
		t.Fatalf("explicit name overridden: %s", c.Scenarios[1].Name)
	}
	if got := c.Scenarios[1].CandidatePaths(); len(got) != 1 || got[0] != "custom/results.csv" {
		t.Fatalf("explicit paths not honored: %v", got)
	}
}

func TestLoadCatalogRejectsSchemaViolation(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "catalog.yaml")
	yaml := `
scenarios:
  - key: 42
`
	if err := os.WriteFile(cfg, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if _, err := Load(cfg, "../../schemas/catalog.cue"); err == nil {
		t.Fatalf("expected schema violation error")
	}
}
