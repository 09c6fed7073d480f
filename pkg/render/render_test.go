package render_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	. "github.com/peektab/peektab/pkg/render"
	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func init() {
	color.NoColor = true
}

func TestFrame(t *testing.T) {
	df := dataframe.NewDataFrame(
		dataframe.NewSeriesString("name", nil, "alice", nil, "carol"),
		dataframe.NewSeriesInt64("age", nil, 30, 41, nil),
		dataframe.NewSeriesFloat64("score", nil, 91.5, nil, 77.25),
	)

	var buf bytes.Buffer
	NewDefault().Frame(&buf, "Preview • people.csv", df)
	out := buf.String()

	require.Contains(t, out, "Preview • people.csv")
	for _, cell := range []string{"name", "age", "score", "alice", "carol", "30", "41", "91.5", "77.25"} {
		require.Contains(t, out, cell)
	}

	// One glyph per missing value.
	require.Equal(t, 3, strings.Count(out, "∅"))
}

func TestFrameTruncatesWideCells(t *testing.T) {
	long := strings.Repeat("x", 200)
	df := dataframe.NewDataFrame(
		dataframe.NewSeriesString("comment", nil, long),
	)

	var buf bytes.Buffer
	New(&Options{MaxCellWidth: 10, NullGlyph: "∅"}).Frame(&buf, "", df)

	require.NotContains(t, buf.String(), long)
	require.Contains(t, buf.String(), strings.Repeat("x", 9)+"…")
}

func TestCell(t *testing.T) {
	r := NewDefault()

	require.Equal(t, "∅", r.Cell(nil))
	require.Equal(t, "hello", r.Cell("hello"))
	require.Equal(t, "42", r.Cell(int64(42)))
	require.Equal(t, "1.5", r.Cell(1.5))
	require.Equal(t, "0.333333", r.Cell(1.0/3.0))
	require.Equal(t, "1.23457e+08", r.Cell(123456789.0))
	require.Equal(t, "2024-06-01 12:30:00", r.Cell(time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)))
}

func TestKV(t *testing.T) {
	var buf bytes.Buffer
	NewDefault().KV(&buf, "Schema • data.csv", []KV{
		{Key: "id", Value: "int64 · nulls=0"},
		{Key: "name", Value: "string · nulls=1"},
		{Key: "email", Value: "string · nulls=2"},
	})

	golden.Assert(t, buf.String(), "schema_panel.golden")
}
