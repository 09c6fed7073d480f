package cmd

import (
	"context"
	"fmt"

	"github.com/peektab/peektab/pkg/summary"
	"github.com/peektab/peektab/pkg/tabular"
	"github.com/urfave/cli/v3"
)

// stats returns a CLI command that computes quick statistics for a data
// file: a numeric summary (count, mean, std, min, max per numeric column)
// followed by the most frequent values of each string column.
//
// Example usage:
//
//	peektab stats data.csv
//	peektab stats sales.parquet --topk 10
func stats() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Compute quick stats (numeric summary + top categories)",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "topk",
				Usage:       "Top-k categories for string columns",
				DefaultText: "from config",
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

			topk := cfg.TopK
			if cmd.IsSet("topk") {
				topk = int(cmd.Int("topk"))
			}

			r := renderer()

			if num := summary.Numeric(df); num != nil {
				r.Frame(cmd.Writer, "Numeric summary", num)
			} else {
				fmt.Fprintln(cmd.Writer, "No numeric columns detected.")
			}

			for _, s := range summary.StringColumns(df) {
				freq := summary.TopK(s, topk)
				if freq == nil {
					continue
				}

				fmt.Fprintln(cmd.Writer)
				r.Frame(cmd.Writer, fmt.Sprintf("Top %d values • %s", topk, s.Name()), freq)
			}

			return nil
		},
	}
}
