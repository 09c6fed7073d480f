// Package tabular loads and stores tabular data files as dataframes.
//
// It supports three formats: delimited text (CSV/TSV with delimiter
// auto-detection), newline-delimited JSON, and Parquet. Format is detected
// from the file extension unless explicitly overridden, and unknown
// extensions fall back to delimited text so a file is never refused outright.
//
// CSV and NDJSON loading delegates to the dataframe-go imports/exports
// packages; Parquet support bridges between dataframe series and
// fraugster/parquet-go row maps.
package tabular
