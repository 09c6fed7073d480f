package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/peektab/peektab/pkg/render"
	"github.com/peektab/peektab/pkg/tabular"
	"github.com/urfave/cli/v3"
)

// show returns a CLI command that prints a truncated head preview of a data
// file as a formatted table.
//
// Flags:
//   - --rows, -n: Number of rows to display (default from config, 20)
//   - --cols: Comma-separated list of columns to select
//   - --format, -f: Force format instead of detecting by extension
//   - --delimiter, -d: CSV delimiter if not auto-detected
//
// Example usage:
//
//	peektab show data.csv
//	peektab show data.csv -n 50 --cols id,name
//	peektab show export.dat -f csv -d ';'
func show() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a neat, truncated preview of the data (head)",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "rows",
				Aliases:     []string{"n"},
				Usage:       "Number of rows to display",
				DefaultText: "from config",
			},
			&cli.StringFlag{
				Name:  "cols",
				Usage: "Comma-separated list of columns to select",
			},
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

			if cols := cmd.String("cols"); cols != "" {
				names := splitColumns(cols)
				df, err = tabular.SelectColumns(df, names)
				if err != nil {
					return err
				}
			}

			rows := cfg.Rows
			if cmd.IsSet("rows") {
				rows = int(cmd.Int("rows"))
			}

			head := tabular.Head(df, rows)
			renderer().Frame(cmd.Writer, fmt.Sprintf("Preview • %s", filepath.Base(path)), head)
			fmt.Fprintln(cmd.Writer, render.Dim(
				fmt.Sprintf("rows shown: %d (file preview) | columns: %d", head.NRows(), len(head.Names()))))

			return nil
		},
	}
}

// splitColumns parses a comma-separated column list, dropping empty entries.
func splitColumns(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	return names
}
