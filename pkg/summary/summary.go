// Package summary computes quick statistics over dataframes: a numeric
// summary (count, mean, std, min, max per numeric column) and top-k value
// frequencies for string columns.
package summary

import (
	"math"
	"sort"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Numeric returns a frame with one row per numeric column of df, holding the
// non-missing count, mean, standard deviation, minimum, and maximum. It
// returns nil when df has no numeric columns.
func Numeric(df *dataframe.DataFrame) *dataframe.DataFrame {
	numeric := NumericColumns(df)
	if len(numeric) == 0 {
		return nil
	}

	var (
		names  = make([]interface{}, 0, len(numeric))
		counts = make([]interface{}, 0, len(numeric))
		means  = make([]interface{}, 0, len(numeric))
		stds   = make([]interface{}, 0, len(numeric))
		mins   = make([]interface{}, 0, len(numeric))
		maxs   = make([]interface{}, 0, len(numeric))
	)

	for _, s := range numeric {
		xs := floatValues(s)

		names = append(names, s.Name())
		counts = append(counts, int64(len(xs)))

		if len(xs) == 0 {
			means = append(means, nil)
			stds = append(stds, nil)
			mins = append(mins, nil)
			maxs = append(maxs, nil)
			continue
		}

		means = append(means, stat.Mean(xs, nil))
		if len(xs) > 1 {
			stds = append(stds, stat.StdDev(xs, nil))
		} else {
			stds = append(stds, nil)
		}
		mins = append(mins, floats.Min(xs))
		maxs = append(maxs, floats.Max(xs))
	}

	return dataframe.NewDataFrame(
		dataframe.NewSeriesString("column", nil, names...),
		dataframe.NewSeriesInt64("count", nil, counts...),
		dataframe.NewSeriesFloat64("mean", nil, means...),
		dataframe.NewSeriesFloat64("std", nil, stds...),
		dataframe.NewSeriesFloat64("min", nil, mins...),
		dataframe.NewSeriesFloat64("max", nil, maxs...),
	)
}

// TopK returns the k most frequent non-missing values of s as a frame with
// value and count columns, most frequent first. Equal counts order by value
// so results are deterministic. It returns nil when s holds no values or is
// not a string series.
func TopK(s dataframe.Series, k int) *dataframe.DataFrame {
	ss, ok := s.(*dataframe.SeriesString)
	if !ok {
		return nil
	}

	freq := map[string]int64{}
	for i, n := 0, ss.NRows(); i < n; i++ {
		if v := ss.Value(i); v != nil {
			freq[v.(string)]++
		}
	}
	if len(freq) == 0 {
		return nil
	}

	values := make([]string, 0, len(freq))
	for v := range freq {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if freq[values[i]] != freq[values[j]] {
			return freq[values[i]] > freq[values[j]]
		}
		return values[i] < values[j]
	})

	if k < len(values) {
		values = values[:k]
	}

	var (
		vals   = make([]interface{}, 0, len(values))
		counts = make([]interface{}, 0, len(values))
	)
	for _, v := range values {
		vals = append(vals, v)
		counts = append(counts, freq[v])
	}

	return dataframe.NewDataFrame(
		dataframe.NewSeriesString("value", nil, vals...),
		dataframe.NewSeriesInt64("count", nil, counts...),
	)
}

// NumericColumns returns df's float64 and int64 series, in column order.
func NumericColumns(df *dataframe.DataFrame) []dataframe.Series {
	var out []dataframe.Series
	for _, s := range df.Series {
		switch s.(type) {
		case *dataframe.SeriesFloat64, *dataframe.SeriesInt64:
			out = append(out, s)
		}
	}
	return out
}

// StringColumns returns df's string series, in column order.
func StringColumns(df *dataframe.DataFrame) []dataframe.Series {
	var out []dataframe.Series
	for _, s := range df.Series {
		if _, ok := s.(*dataframe.SeriesString); ok {
			out = append(out, s)
		}
	}
	return out
}

// floatValues collects the non-missing values of a numeric series as floats.
func floatValues(s dataframe.Series) []float64 {
	switch v := s.(type) {
	case *dataframe.SeriesFloat64:
		xs := make([]float64, 0, len(v.Values))
		for _, x := range v.Values {
			if !math.IsNaN(x) {
				xs = append(xs, x)
			}
		}
		return xs
	case *dataframe.SeriesInt64:
		n := v.NRows()
		xs := make([]float64, 0, n)
		for i := 0; i < n; i++ {
			if x := v.Value(i); x != nil {
				xs = append(xs, float64(x.(int64)))
			}
		}
		return xs
	}

	return nil
}
