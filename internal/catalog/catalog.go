// Package catalog defines the set of partition-healing scenarios to analyze
// and where each scenario's results are expected on disk.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario is one named test case mapped to candidate result-file locations.
type Scenario struct {
	Key   string   `yaml:"key"`
	Name  string   `yaml:"name,omitempty"`
	Paths []string `yaml:"paths,omitempty"`
}

// Catalog is an ordered list of scenarios.
type Catalog struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// CandidatePaths returns the result-file locations tried for s, in order.
// Defaults to <name>/metrics.csv then <name>.csv when none are configured.
func (s Scenario) CandidatePaths() []string {
	if len(s.Paths) > 0 {
		return s.Paths
	}
	return []string{
		filepath.Join(s.Name, "metrics.csv"),
		s.Name + ".csv",
	}
}

// Locate resolves s against a results root. The first existing candidate
// wins; ok is false when no candidate exists.
func (s Scenario) Locate(root string) (path string, ok bool) {
	for _, c := range s.CandidatePaths() {
		p := filepath.Join(root, c)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// BuiltIn returns the fixed issue-138 scenario catalog.
func BuiltIn() Catalog {
	keys := []string{
		"rapid_partition_cycles",
		"message_routing",
		"uneven_partitions",
		"stress_partition",
		"cascade_healing",
	}
	c := Catalog{Scenarios: make([]Scenario, 0, len(keys))}
	for _, k := range keys {
		c.Scenarios = append(c.Scenarios, Scenario{Key: k, Name: "issue_138_" + k})
	}
	return c
}

// Load reads a YAML catalog and validates it against a CUE schema.
// Scenarios without an explicit name inherit "issue_138_<key>".
func Load(configPath, cueSchemaPath string) (Catalog, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return Catalog{}, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Scenarios) == 0 {
		return Catalog{}, fmt.Errorf("catalog %s defines no scenarios", configPath)
	}
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == "" {
			c.Scenarios[i].Name = "issue_138_" + c.Scenarios[i].Key
		}
	}
	return c, nil
}
