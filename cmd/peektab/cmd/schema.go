package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/peektab/peektab/pkg/render"
	"github.com/peektab/peektab/pkg/tabular"
	"github.com/urfave/cli/v3"
)

// schemaCmd returns a CLI command that prints the inferred schema of a data
// file: column names, inferred types, and per-column null counts.
//
// Example usage:
//
//	peektab schema data.csv
//	peektab schema events.ndjson
func schemaCmd() *cli.Command {
	return &cli.Command{
		Name:      "schema",
		Usage:     "Print inferred schema with types and null counts",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			formatFlag(),
			delimiterFlag("CSV delimiter if not comma"),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := pathArg(cmd)
			if err != nil {
				return err
			}

			opts, err := readOptions(cmd)
			if err != nil {
				return err
			}

			df, err := tabular.ReadFrame(ctx, path, opts)
			if err != nil {
				return err
			}

			pairs := make([]render.KV, 0, len(df.Series))
			for _, col := range tabular.Schema(df) {
				pairs = append(pairs, render.KV{
					Key:   col.Name,
					Value: fmt.Sprintf("%s · nulls=%d", col.Type, col.Nulls),
				})
			}

			renderer().KV(cmd.Writer, fmt.Sprintf("Schema • %s", filepath.Base(path)), pairs)
			return nil
		},
	}
}
