package tabular_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/peektab/peektab/pkg/tabular"
	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func writerTestFrame() *dataframe.DataFrame {
	return dataframe.NewDataFrame(
		dataframe.NewSeriesString("name", nil, "alice", "bob", "carol"),
		dataframe.NewSeriesInt64("age", nil, 30, nil, 25),
	)
}

func TestWriteFrameCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("default comma", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		require.NoError(t, WriteFrame(ctx, path, writerTestFrame(), WriteOptions{}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		golden.Assert(t, string(content), "out.csv.golden")
	})

	t.Run("custom delimiter", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		require.NoError(t, WriteFrame(ctx, path, writerTestFrame(), WriteOptions{Delimiter: ';'}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		golden.Assert(t, string(content), "out_semicolon.csv.golden")
	})
}

func TestWriteFrameNDJSON(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "out.jsonl")
	require.NoError(t, WriteFrame(ctx, path, writerTestFrame(), WriteOptions{}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	golden.Assert(t, string(content), "out.jsonl.golden")
}

func TestWriteFrameUnsupported(t *testing.T) {
	err := WriteFrame(context.Background(), "out.xlsx", writerTestFrame(), WriteOptions{Format: Format("xlsx")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported format")
}

func TestCSVRoundTrip(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteFrame(ctx, path, writerTestFrame(), WriteOptions{}))

	df, err := ReadFrame(ctx, path, ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"name", "age"}, df.Names())
	require.Equal(t, 3, df.NRows())

	age := df.Series[1].(*dataframe.SeriesInt64)
	require.Equal(t, int64(30), age.Value(0))
	require.Nil(t, age.Value(1))
	require.Equal(t, int64(25), age.Value(2))
}
