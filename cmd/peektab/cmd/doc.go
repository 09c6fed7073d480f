// Package cmd provides the CLI commands for the peektab tool.
//
// This package implements the command-line interface for peektab, providing
// commands for previewing, summarizing, sampling, and converting tabular data
// files (CSV/TSV, NDJSON, Parquet). Each command is implemented as a separate
// function that returns a *cli.Command, following the urfave/cli/v3 pattern.
//
// # Available Commands
//
//   - show: Truncated head preview as a formatted table
//   - schema: Inferred column types and null counts
//   - stats: Numeric summary and top-k category frequencies
//   - sample: Random rows, deterministic for a given seed
//   - columns: Column name and type listing
//   - convert: Convert between csv, ndjson, and parquet
//   - info: Quick file facts (format, delimiter, rows, columns, size)
//
// # Global Options
//
// All commands support global flags:
//   - --config, -c: Path to a peektab.yaml with display and sniffing defaults
//   - --verbose: Debug logging on stderr
//
// Example usage:
//
//	peektab show data.csv -n 50
//	peektab schema events.ndjson
//	peektab stats sales.parquet --topk 10
//	peektab convert data.csv data.parquet
package cmd
