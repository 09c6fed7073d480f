package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peektab/peektab/pkg/tabular"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// convert returns a CLI command that converts a data file between csv,
// ndjson, and parquet. The destination format comes from --to-format or the
// destination extension (jsonl and pq are accepted aliases); an unknown
// destination extension with no explicit format is an error.
//
// Example usage:
//
//	peektab convert data.csv data.parquet
//	peektab convert data.parquet export.jsonl
//	peektab convert data.csv out.txt -T csv -d ';'
func convert() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert between formats (csv <-> parquet <-> ndjson)",
		ArgsUsage: "<src> <dst>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "from-format",
				Aliases: []string{"F"},
				Usage:   "Source format: csv|ndjson|parquet",
			},
			&cli.StringFlag{
				Name:    "to-format",
				Aliases: []string{"T"},
				Usage:   "Destination format: csv|ndjson|parquet",
			},
			delimiterFlag("Delimiter for CSV output, default comma"),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return errors.New("exactly two arguments are required: <src> <dst>")
			}

			src := cmd.Args().Get(0)
			dst := cmd.Args().Get(1)

			readOpts := tabular.ReadOptions{
				Candidates: cfg.Candidates(),
				SniffLines: cfg.Sniff.Lines,
			}
			if f := cmd.String("from-format"); f != "" {
				format, err := tabular.ParseFormat(f)
				if err != nil {
					return err
				}
				readOpts.Format = format
			}

			df, err := tabular.ReadFrame(ctx, src, readOpts)
			if err != nil {
				return err
			}

			name := cmd.String("to-format")
			if name == "" {
				name = strings.TrimPrefix(strings.ToLower(filepath.Ext(dst)), ".")
			}
			outFormat, err := tabular.ParseFormat(name)
			if err != nil {
				return err
			}

			delim, err := parseDelimiter(cmd.String("delimiter"))
			if err != nil {
				return err
			}

			if err := tabular.WriteFrame(ctx, dst, df, tabular.WriteOptions{
				Format:    outFormat,
				Delimiter: delim,
			}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.Writer, "%s %s\n", color.New(color.FgGreen).Sprint("Wrote"), dst)
			return nil
		},
	}
}
