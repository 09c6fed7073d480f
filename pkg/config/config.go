package config

import (
	"io"
	"os"

	"github.com/peektab/peektab/pkg/consts"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// Sniff represents delimiter-detection configuration.
	//
	// The candidate set and the line bound are deliberately configurable: the
	// built-in defaults (comma, tab, semicolon, pipe, first 64 lines) are common
	// conventions for tabular text, not hard requirements.
	Sniff struct {
		// Delimiters lists the candidate delimiter characters in priority order.
		// Earlier characters win ties during detection.
		Delimiters string `yaml:"delimiters,omitempty"`

		// Lines bounds how many lines are sampled from the head of a file
		Lines int `yaml:"lines,omitempty"`
	}

	// Config represents the optional peektab.yaml configuration controlling
	// display defaults and delimiter detection. Every field has a sensible
	// default, so an absent or empty file is fine.
	Config struct {
		// Rows is the default number of rows shown by the show command
		Rows int `yaml:"rows,omitempty"`

		// TopK is the default number of most frequent values reported per string column
		TopK int `yaml:"topk,omitempty"`

		// MaxCellWidth is the display width at which cell values are truncated
		MaxCellWidth int `yaml:"max_cell_width,omitempty"`

		// NullGlyph is rendered in place of missing values
		NullGlyph string `yaml:"null_glyph,omitempty"`

		// Sniff contains delimiter-detection settings
		Sniff Sniff `yaml:"sniff"`
	}
)

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Rows:         consts.DefaultPreviewRows,
		TopK:         consts.DefaultTopK,
		MaxCellWidth: consts.DefaultMaxCellWidth,
		NullGlyph:    consts.DefaultNullGlyph,
		Sniff: Sniff{
			Delimiters: consts.DefaultDelimiters,
			Lines:      consts.DefaultSniffLines,
		},
	}
}

// LoadConfig parses a peektab configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Any field left unset
// falls back to its built-in default, so partial configuration files are
// supported.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader("rows: 50\n"))
//	if err != nil {
//		panic(err)
//	}
//	fmt.Println(cfg.Rows) // 50
//	fmt.Println(cfg.TopK) // 5 (default)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal peektab config")
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Candidates returns the configured delimiter candidates as runes, in priority
// order.
func (c *Config) Candidates() []rune {
	return []rune(c.Sniff.Delimiters)
}

func applyDefaults(cfg *Config) {
	if cfg.Rows == 0 {
		cfg.Rows = consts.DefaultPreviewRows
	}
	if cfg.TopK == 0 {
		cfg.TopK = consts.DefaultTopK
	}
	if cfg.MaxCellWidth == 0 {
		cfg.MaxCellWidth = consts.DefaultMaxCellWidth
	}
	if cfg.NullGlyph == "" {
		cfg.NullGlyph = consts.DefaultNullGlyph
	}
	if cfg.Sniff.Delimiters == "" {
		cfg.Sniff.Delimiters = consts.DefaultDelimiters
	}
	if cfg.Sniff.Lines == 0 {
		cfg.Sniff.Lines = consts.DefaultSniffLines
	}
}
