package summary_test

import (
	"testing"

	. "github.com/peektab/peektab/pkg/summary"
	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/stretchr/testify/require"
)

func numericTestFrame() *dataframe.DataFrame {
	return dataframe.NewDataFrame(
		dataframe.NewSeriesString("name", nil, "a", "b", "c", "d"),
		dataframe.NewSeriesInt64("age", nil, 10, 20, 30, nil),
		dataframe.NewSeriesFloat64("score", nil, 1.0, 2.0, 3.0, 4.0),
	)
}

func TestNumeric(t *testing.T) {
	t.Run("summarizes numeric columns", func(t *testing.T) {
		out := Numeric(numericTestFrame())
		require.NotNil(t, out)
		require.Equal(t, []string{"column", "count", "mean", "std", "min", "max"}, out.Names())
		require.Equal(t, 2, out.NRows())

		column := out.Series[0].(*dataframe.SeriesString)
		require.Equal(t, "age", column.Value(0))
		require.Equal(t, "score", column.Value(1))

		count := out.Series[1].(*dataframe.SeriesInt64)
		require.Equal(t, int64(3), count.Value(0))
		require.Equal(t, int64(4), count.Value(1))

		mean := out.Series[2].(*dataframe.SeriesFloat64)
		require.InDelta(t, 20.0, mean.Values[0], 1e-9)
		require.InDelta(t, 2.5, mean.Values[1], 1e-9)

		std := out.Series[3].(*dataframe.SeriesFloat64)
		require.InDelta(t, 10.0, std.Values[0], 1e-9)

		min := out.Series[4].(*dataframe.SeriesFloat64)
		require.InDelta(t, 10.0, min.Values[0], 1e-9)
		require.InDelta(t, 1.0, min.Values[1], 1e-9)

		max := out.Series[5].(*dataframe.SeriesFloat64)
		require.InDelta(t, 30.0, max.Values[0], 1e-9)
		require.InDelta(t, 4.0, max.Values[1], 1e-9)
	})

	t.Run("no numeric columns", func(t *testing.T) {
		df := dataframe.NewDataFrame(
			dataframe.NewSeriesString("name", nil, "a", "b"),
		)
		require.Nil(t, Numeric(df))
	})
}

func TestTopK(t *testing.T) {
	s := dataframe.NewSeriesString("city", nil,
		"oslo", "lima", "oslo", "kyiv", "lima", "oslo", nil)

	t.Run("orders by count then value", func(t *testing.T) {
		out := TopK(s, 3)
		require.NotNil(t, out)
		require.Equal(t, 3, out.NRows())

		value := out.Series[0].(*dataframe.SeriesString)
		count := out.Series[1].(*dataframe.SeriesInt64)

		require.Equal(t, "oslo", value.Value(0))
		require.Equal(t, int64(3), count.Value(0))
		require.Equal(t, "lima", value.Value(1))
		require.Equal(t, int64(2), count.Value(1))
		require.Equal(t, "kyiv", value.Value(2))
		require.Equal(t, int64(1), count.Value(2))
	})

	t.Run("k larger than distinct values", func(t *testing.T) {
		out := TopK(s, 10)
		require.Equal(t, 3, out.NRows())
	})

	t.Run("non-string series", func(t *testing.T) {
		require.Nil(t, TopK(dataframe.NewSeriesInt64("n", nil, 1, 2), 5))
	})

	t.Run("all missing", func(t *testing.T) {
		require.Nil(t, TopK(dataframe.NewSeriesString("s", nil, nil, nil), 5))
	})
}

func TestColumnFilters(t *testing.T) {
	df := numericTestFrame()

	numeric := NumericColumns(df)
	require.Len(t, numeric, 2)
	require.Equal(t, "age", numeric[0].Name())
	require.Equal(t, "score", numeric[1].Name())

	strs := StringColumns(df)
	require.Len(t, strs, 1)
	require.Equal(t, "name", strs[0].Name())
}
