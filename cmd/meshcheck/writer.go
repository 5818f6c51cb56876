package main

import (
	"os"

	"meshcheck/internal/catalog"
	"meshcheck/internal/export"
)

// loadCatalog resolves the scenario catalog. An empty path selects the
// built-in issue-138 catalog.
func loadCatalog(path, schemaPath string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.BuiltIn(), nil
	}
	return catalog.Load(path, schemaPath)
}

// newResultWriters sets up optional structured result sinks based on flags
// and env vars. It returns the sink (nil when none are configured) and a
// cleanup function to close any resources.
func newResultWriters(logFile string) (export.ReportWriter, func(), error) {
	cleanup := func() {}

	var writers []export.ReportWriter
	if logFile != "" {
		fw, err := export.NewFileWriter(logFile)
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, fw)
		cleanup = func() { fw.Close() }
	}
	if endpoint := os.Getenv("GREPTIMEDB_ENDPOINT"); endpoint != "" {
		db := os.Getenv("GREPTIMEDB_DATABASE")
		if db == "" {
			db = "public"
		}
		gw, err := export.NewGreptimeDBWriter(endpoint, db)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		writers = append(writers, gw)
	}

	switch len(writers) {
	case 0:
		return nil, cleanup, nil
	case 1:
		return writers[0], cleanup, nil
	default:
		return export.NewMultiWriter(writers...), cleanup, nil
	}
}
