package tabular

import (
	"context"
	"os"

	"github.com/peektab/peektab/pkg/logging"
	"github.com/peektab/peektab/pkg/sniff"
	"github.com/peektab/peektab/pkg/utils"
	"github.com/pkg/errors"
	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
)

// ReadOptions controls how a file is loaded into a dataframe.
type ReadOptions struct {
	// Format forces the file format; empty means detect from the extension
	Format Format

	// Delimiter forces the CSV field delimiter; zero means auto-detect
	Delimiter rune

	// Candidates overrides the delimiter candidate set used for detection
	Candidates []rune

	// SniffLines bounds the number of lines sampled for detection
	SniffLines int
}

// ReadFrame loads the file at path into a dataframe. CSV files with no
// explicit delimiter are sniffed first; the sniffing pass opens the file
// independently, so the load always re-reads from the start.
func ReadFrame(ctx context.Context, path string, opts ReadOptions) (*dataframe.DataFrame, error) {
	format := opts.Format
	if format == "" {
		f, err := DetectFormat(path, "")
		if err != nil {
			return nil, err
		}
		format = f
	}

	log := logging.Logger()

	switch format {
	case CSV:
		delim := opts.Delimiter
		if delim == 0 {
			d, err := SniffDelimiter(path, opts.SniffLines, opts.Candidates...)
			switch {
			case errors.Is(err, sniff.ErrEmptySample):
				// Nothing to sniff; let the CSV loader report the empty file.
				d = ','
			case err != nil:
				return nil, err
			}
			delim = d
			log.Debug().Str("path", path).Str("delimiter", string(delim)).Msg("sniffed delimiter")
		}

		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open file: %s", path)
		}
		defer func() { _ = f.Close() }()

		df, err := imports.LoadFromCSV(ctx, f, imports.CSVLoadOptions{
			Comma:            delim,
			InferDataTypes:   true,
			TrimLeadingSpace: true,
			NilValue:         utils.Ptr(""),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read csv: %s", path)
		}

		log.Debug().Str("path", path).Int("rows", df.NRows()).Msg("loaded csv")
		return df, nil

	case NDJSON:
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open file: %s", path)
		}
		defer func() { _ = f.Close() }()

		df, err := imports.LoadFromJSON(ctx, f, imports.JSONLoadOptions{})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read ndjson: %s", path)
		}

		log.Debug().Str("path", path).Int("rows", df.NRows()).Msg("loaded ndjson")
		return df, nil

	case Parquet:
		df, err := readParquet(path)
		if err != nil {
			return nil, err
		}

		log.Debug().Str("path", path).Int("rows", df.NRows()).Msg("loaded parquet")
		return df, nil

	default:
		return nil, errors.Errorf("unsupported format: %s", format)
	}
}
