package tabular

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format identifies a supported file format.
type Format string

const (
	// CSV is delimited text, including TSV and other single-character delimiters
	CSV Format = "csv"

	// NDJSON is newline-delimited JSON (one object per line)
	NDJSON Format = "ndjson"

	// Parquet is the Apache Parquet columnar format
	Parquet Format = "parquet"
)

// ParseFormat normalizes a user-supplied format name. Common aliases are
// accepted: tsv maps to csv, jsonl to ndjson, and pq to parquet.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv", "tsv":
		return CSV, nil
	case "ndjson", "jsonl":
		return NDJSON, nil
	case "parquet", "pq":
		return Parquet, nil
	default:
		return "", errors.Errorf("unsupported format: %s", s)
	}
}

// DetectFormat determines the format of the file at path. A non-empty
// override wins; otherwise the extension decides, and unknown extensions
// fall back to CSV so any file can at least be attempted as delimited text.
func DetectFormat(path string, override string) (Format, error) {
	if override != "" {
		return ParseFormat(override)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return CSV, nil
	case ".jsonl", ".ndjson":
		return NDJSON, nil
	case ".parquet", ".pq":
		return Parquet, nil
	default:
		return CSV, nil
	}
}
