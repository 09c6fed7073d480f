package cmd

import (
	"context"
	"os"

	"github.com/peektab/peektab/pkg/config"
	"github.com/peektab/peektab/pkg/consts"
	"github.com/peektab/peektab/pkg/logging"
	"github.com/peektab/peektab/pkg/render"
	"github.com/peektab/peektab/pkg/tabular"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

var cfg = config.Default()

// Run creates and executes the main peektab CLI application with the given
// version and command-line arguments. This function serves as the main entry
// point for all CLI operations and handles global configuration.
//
// A peektab.yaml in the working directory (or the file named by --config /
// PEEKTAB_CONFIG) supplies display and delimiter-sniffing defaults; when it
// is absent the built-in defaults apply. Per-command flags always win over
// configured values.
//
// Example usage:
//
//	# Preview a file with defaults
//	err := Run(ctx, "v1.0.0", []string{"peektab", "show", "data.csv"})
//
//	# Use an explicit config file
//	err := Run(ctx, "v1.0.0", []string{"peektab", "-c", "team.yaml", "stats", "data.parquet"})
func Run(ctx context.Context, version string, args []string) error {
	app := &cli.Command{
		Name:  "peektab",
		Usage: "Inspect, summarize, and convert tabular data in your terminal",
		Description: `peektab is a terminal utility for previewing tabular data files. It prints
formatted table previews, infers schemas with null counts, computes quick
statistics, samples rows, and converts between CSV/TSV, NDJSON, and Parquet.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the peektab config file",
				Sources: cli.EnvVars("PEEKTAB_CONFIG"),
				Value:   consts.DefaultConfigFile,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetVerbose(cmd.Bool("verbose"))

			path := cmd.String("config")
			if _, err := os.Stat(path); err != nil {
				// The default config file is optional; an explicitly named
				// one has to exist.
				if os.IsNotExist(err) && !cmd.IsSet("config") {
					return ctx, nil
				}
				return ctx, errors.Wrapf(err, "failed to access config: %s", path)
			}

			loaded, err := config.LoadConfigFile(path)
			if err != nil {
				return ctx, err
			}
			cfg = loaded

			return ctx, nil
		},
		Commands: []*cli.Command{
			show(),
			schemaCmd(),
			stats(),
			sample(),
			columnsCmd(),
			convert(),
			info(),
		},
	}

	return app.Run(ctx, args)
}

// pathArg returns the single required path argument of a command.
func pathArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", errors.New("exactly one path argument is required")
	}

	return cmd.Args().First(), nil
}

// formatFlag is the shared --format/-f override flag.
func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Force format: csv|ndjson|parquet",
	}
}

// delimiterFlag is the shared --delimiter/-d flag.
func delimiterFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:    "delimiter",
		Aliases: []string{"d"},
		Usage:   usage,
	}
}

// parseDelimiter converts the --delimiter flag value to a rune. The literal
// escape "\t" is accepted so tabs can be passed without shell quoting tricks.
func parseDelimiter(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	if s == `\t` {
		return '\t', nil
	}

	r := []rune(s)
	if len(r) != 1 {
		return 0, errors.Errorf("delimiter must be a single character: %q", s)
	}

	return r[0], nil
}

// readOptions builds tabular read options from a command's format/delimiter
// flags and the loaded configuration.
func readOptions(cmd *cli.Command) (tabular.ReadOptions, error) {
	opts := tabular.ReadOptions{
		Candidates: cfg.Candidates(),
		SniffLines: cfg.Sniff.Lines,
	}

	if f := cmd.String("format"); f != "" {
		format, err := tabular.ParseFormat(f)
		if err != nil {
			return opts, err
		}
		opts.Format = format
	}

	delim, err := parseDelimiter(cmd.String("delimiter"))
	if err != nil {
		return opts, err
	}
	opts.Delimiter = delim

	return opts, nil
}

// renderer builds a renderer from the loaded configuration.
func renderer() *render.Renderer {
	return render.New(&render.Options{
		MaxCellWidth: cfg.MaxCellWidth,
		NullGlyph:    cfg.NullGlyph,
	})
}
