package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/peektab/peektab/pkg/render"
	"github.com/peektab/peektab/pkg/tabular"
	"github.com/urfave/cli/v3"
)

// columnsCmd returns a CLI command that lists a file's columns and their
// inferred types.
func columnsCmd() *cli.Command {
	return &cli.Command{
		Name:      "columns",
		Usage:     "List columns",
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
				pairs = append(pairs, render.KV{Key: col.Name, Value: col.Type})
			}

			renderer().KV(cmd.Writer, fmt.Sprintf("Columns • %s", filepath.Base(path)), pairs)
			return nil
		},
	}
}
