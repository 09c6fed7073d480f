package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/peektab/peektab/pkg/render"
	"github.com/peektab/peektab/pkg/sniff"
	"github.com/peektab/peektab/pkg/tabular"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// info returns a CLI command that prints quick facts about a data file:
// format, delimiter (for delimited text), row and column counts, and size
// on disk.
func info() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Quick info: rows, columns, format, delimiter, and file size",
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

			format, err := tabular.DetectFormat(path, cmd.String("format"))
			if err != nil {
				return err
			}

			delim, err := parseDelimiter(cmd.String("delimiter"))
			if err != nil {
				return err
			}

			display := "—"
			if format == tabular.CSV {
				if delim == 0 {
					delim, err = tabular.SniffDelimiter(path, cfg.Sniff.Lines, cfg.Candidates()...)
					switch {
					case errors.Is(err, sniff.ErrEmptySample):
						delim = 0
					case err != nil:
						return err
					}
				}
				if delim != 0 {
					display = displayDelimiter(delim)
				}
			}

			df, err := tabular.ReadFrame(ctx, path, tabular.ReadOptions{
				Format:    format,
				Delimiter: delim,
			})
			if err != nil {
				return err
			}

			st, err := os.Stat(path)
			if err != nil {
				return errors.Wrapf(err, "failed to stat file: %s", path)
			}

			renderer().KV(cmd.Writer, "Info", []render.KV{
				{Key: "file", Value: filepath.Base(path)},
				{Key: "format", Value: string(format)},
				{Key: "delimiter", Value: display},
				{Key: "rows", Value: strconv.Itoa(df.NRows())},
				{Key: "columns", Value: strconv.Itoa(len(df.Names()))},
				{Key: "size", Value: humanSize(st.Size())},
			})

			return nil
		},
	}
}

// displayDelimiter makes control characters readable in output.
func displayDelimiter(d rune) string {
	if d == '\t' {
		return `\t`
	}

	return string(d)
}

// humanSize renders a byte count with a binary unit suffix.
func humanSize(n int64) string {
	const unit = 1024

	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.2f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
