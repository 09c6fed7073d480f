package tabular_test

import (
	"context"
	"testing"

	. "github.com/peektab/peektab/pkg/tabular"
	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/stretchr/testify/require"
)

func TestReadFrameCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("comma delimited", func(t *testing.T) {
		path := writeTempFile(t, "people.csv", "name,age\nalice,30\nbob,41\n")

		df, err := ReadFrame(ctx, path, ReadOptions{})
		require.NoError(t, err)
		require.Equal(t, []string{"name", "age"}, df.Names())
		require.Equal(t, 2, df.NRows())
	})

	t.Run("sniffs tab delimiter", func(t *testing.T) {
		path := writeTempFile(t, "people.tsv", "name\tage\nalice\t30\nbob\t41\n")

		df, err := ReadFrame(ctx, path, ReadOptions{})
		require.NoError(t, err)
		require.Equal(t, []string{"name", "age"}, df.Names())
		require.Equal(t, 2, df.NRows())
	})

	t.Run("explicit delimiter wins", func(t *testing.T) {
		path := writeTempFile(t, "data.csv", "a;b\n1;2\n")

		df, err := ReadFrame(ctx, path, ReadOptions{Delimiter: ';'})
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, df.Names())
		require.Equal(t, 1, df.NRows())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFrame(ctx, "nope.csv", ReadOptions{})
		require.Error(t, err)
	})
}

func TestReadFrameNDJSON(t *testing.T) {
	ctx := context.Background()

	path := writeTempFile(t, "events.jsonl",
		`{"event":"open","n":1}`+"\n"+`{"event":"close","n":2}`+"\n")

	df, err := ReadFrame(ctx, path, ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, 2, df.NRows())
	require.Len(t, df.Names(), 2)
}

func TestReadFrameFormatOverride(t *testing.T) {
	ctx := context.Background()

	// CSV content behind an unknown extension, forced via Format.
	path := writeTempFile(t, "export.dat", "a,b\n1,2\n")

	df, err := ReadFrame(ctx, path, ReadOptions{Format: CSV})
	require.NoError(t, err)
	require.Equal(t, 1, df.NRows())
}

func TestParquetRoundTrip(t *testing.T) {
	ctx := context.Background()

	src := dataframe.NewDataFrame(
		dataframe.NewSeriesString("name", nil, "alice", nil, "carol"),
		dataframe.NewSeriesInt64("age", nil, 30, 41, nil),
		dataframe.NewSeriesFloat64("score", nil, 91.5, nil, 77.25),
	)

	path := writeTempFile(t, "people.parquet", "")
	require.NoError(t, WriteFrame(ctx, path, src, WriteOptions{}))

	df, err := ReadFrame(ctx, path, ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"name", "age", "score"}, df.Names())
	require.Equal(t, 3, df.NRows())

	name := df.Series[0].(*dataframe.SeriesString)
	require.Equal(t, "alice", name.Value(0))
	require.Nil(t, name.Value(1))
	require.Equal(t, "carol", name.Value(2))

	age := df.Series[1].(*dataframe.SeriesInt64)
	require.Equal(t, int64(30), age.Value(0))
	require.Equal(t, int64(41), age.Value(1))
	require.Nil(t, age.Value(2))

	score := df.Series[2].(*dataframe.SeriesFloat64)
	require.InDelta(t, 91.5, score.Values[0], 1e-9)
	require.InDelta(t, 77.25, score.Values[2], 1e-9)

	cols := Schema(df)
	require.Equal(t, "string", cols[0].Type)
	require.Equal(t, "int64", cols[1].Type)
	require.Equal(t, "float64", cols[2].Type)
}
