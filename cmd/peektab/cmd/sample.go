package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/peektab/peektab/pkg/consts"
	"github.com/peektab/peektab/pkg/tabular"
	"github.com/urfave/cli/v3"
)

// sample returns a CLI command that prints n random rows of a data file.
// The same seed always selects the same rows, so results are reproducible;
// sampling an empty dataset is an error.
//
// Example usage:
//
//	peektab sample data.csv
//	peektab sample data.csv --n 25 --seed 7
func sample() *cli.Command {
	return &cli.Command{
		Name:      "sample",
		Usage:     "Sample random rows",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "n",
				Usage: "Number of rows to sample",
				Value: consts.DefaultSampleRows,
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "Random seed for reproducible samples",
				Value: consts.DefaultSampleSeed,
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

			sampled, err := tabular.SampleRows(df, int(cmd.Int("n")), int64(cmd.Int("seed")))
			if err != nil {
				return err
			}

			renderer().Frame(cmd.Writer,
				fmt.Sprintf("Random sample (%d) • %s", sampled.NRows(), filepath.Base(path)), sampled)

			return nil
		},
	}
}
