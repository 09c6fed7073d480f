// Package render draws dataframes and key/value panels on a terminal.
//
// It wraps tablewriter for table layout, mattn/go-runewidth for display-width
// aware truncation of wide cells, and fatih/color for title styling. Missing
// values render as a configurable null glyph rather than an empty cell so
// they stand out from empty strings.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/peektab/peektab/pkg/consts"
	dataframe "github.com/rocketlaunchr/dataframe-go"
)

// Options controls rendering behavior.
type Options struct {
	// MaxCellWidth is the display width at which cell values are truncated (0 = no limit)
	MaxCellWidth int
	// NullGlyph is rendered in place of missing values
	NullGlyph string
}

// DefaultOptions returns standard rendering options.
func DefaultOptions() *Options {
	return &Options{
		MaxCellWidth: consts.DefaultMaxCellWidth,
		NullGlyph:    consts.DefaultNullGlyph,
	}
}

// Renderer draws frames and key/value panels with configurable options.
type Renderer struct {
	options *Options
}

// New creates a new Renderer with the specified options. A nil options uses
// DefaultOptions.
func New(options *Options) *Renderer {
	if options == nil {
		options = DefaultOptions()
	}
	return &Renderer{options: options}
}

// NewDefault creates a new Renderer with default options.
func NewDefault() *Renderer {
	return New(DefaultOptions())
}

// Frame writes df to w as a formatted table, preceded by title when set.
func (r *Renderer) Frame(w io.Writer, title string, df *dataframe.DataFrame) {
	if title != "" {
		_, _ = color.New(color.Bold).Fprintln(w, title)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(df.Names())
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	nrows := df.NRows()
	for i := 0; i < nrows; i++ {
		row := make([]string, len(df.Series))
		for j, s := range df.Series {
			row[j] = r.Cell(s.Value(i))
		}
		table.Append(row)
	}

	table.Render()
}

// KV writes a titled panel of aligned key/value pairs to w.
func (r *Renderer) KV(w io.Writer, title string, pairs []KV) {
	if title != "" {
		_, _ = color.New(color.Bold).Fprintln(w, title)
	}

	width := 0
	for _, p := range pairs {
		if kw := runewidth.StringWidth(p.Key); kw > width {
			width = kw
		}
	}

	for _, p := range pairs {
		fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(p.Key, width), p.Value)
	}
}

// KV is a single key/value pair for panel rendering.
type KV struct {
	Key   string
	Value string
}

// Dim returns s styled faint for footers and annotations.
func Dim(s string) string {
	return color.New(color.Faint).Sprint(s)
}
