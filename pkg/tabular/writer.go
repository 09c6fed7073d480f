package tabular

import (
	"context"
	"os"

	"github.com/peektab/peektab/pkg/utils"
	"github.com/pkg/errors"
	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/exports"
)

// WriteOptions controls how a dataframe is stored to a file.
type WriteOptions struct {
	// Format forces the output format; empty means detect from the extension
	Format Format

	// Delimiter sets the CSV field delimiter; zero means comma
	Delimiter rune
}

// WriteFrame stores df to path in the requested format.
func WriteFrame(ctx context.Context, path string, df *dataframe.DataFrame, opts WriteOptions) error {
	format := opts.Format
	if format == "" {
		f, err := DetectFormat(path, "")
		if err != nil {
			return err
		}
		format = f
	}

	switch format {
	case CSV:
		delim := opts.Delimiter
		if delim == 0 {
			delim = ','
		}

		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "failed to create file: %s", path)
		}
		defer func() { _ = f.Close() }()

		if err := exports.ExportToCSV(ctx, f, df, exports.CSVExportOptions{
			Separator:  delim,
			NullString: utils.Ptr(""),
		}); err != nil {
			return errors.Wrapf(err, "failed to write csv: %s", path)
		}
		return nil

	case NDJSON:
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "failed to create file: %s", path)
		}
		defer func() { _ = f.Close() }()

		if err := exports.ExportToJSON(ctx, f, df, exports.JSONExportOptions{
			SetEscapeHTML: false,
		}); err != nil {
			return errors.Wrapf(err, "failed to write ndjson: %s", path)
		}
		return nil

	case Parquet:
		return writeParquet(path, df)

	default:
		return errors.Errorf("unsupported format: %s", format)
	}
}
