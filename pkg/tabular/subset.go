package tabular

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
	dataframe "github.com/rocketlaunchr/dataframe-go"
)

// Head returns a frame holding the first n rows of df. If df has n rows or
// fewer it is returned as is; n values of zero or less yield an empty frame
// with the same columns.
func Head(df *dataframe.DataFrame, n int) *dataframe.DataFrame {
	if n <= 0 {
		return subsetRows(df, nil)
	}
	if n >= df.NRows() {
		return df
	}

	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}

	return subsetRows(df, rows)
}

// SampleRows returns a frame of n rows drawn uniformly at random from df,
// in their original order. The same seed always yields the same rows. n is
// clamped to the number of rows; sampling an empty frame or asking for a
// non-positive n is an error.
func SampleRows(df *dataframe.DataFrame, n int, seed int64) (*dataframe.DataFrame, error) {
	nrows := df.NRows()
	if nrows == 0 {
		return nil, errors.New("empty dataset: nothing to sample")
	}
	if n <= 0 {
		return nil, errors.Errorf("sample size must be positive: %d", n)
	}
	if n > nrows {
		n = nrows
	}

	rows := rand.New(rand.NewSource(seed)).Perm(nrows)[:n]
	sort.Ints(rows)

	return subsetRows(df, rows), nil
}

// SelectColumns returns a frame holding only the named columns of df, in the
// order given.
func SelectColumns(df *dataframe.DataFrame, names []string) (*dataframe.DataFrame, error) {
	series := make([]dataframe.Series, 0, len(names))

	for _, name := range names {
		found := false
		for _, s := range df.Series {
			if s.Name() == name {
				series = append(series, s)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Errorf("unknown column: %s", name)
		}
	}

	return dataframe.NewDataFrame(series...), nil
}

// subsetRows builds a new frame from the given row indices, preserving each
// series' concrete type.
func subsetRows(df *dataframe.DataFrame, rows []int) *dataframe.DataFrame {
	series := make([]dataframe.Series, 0, len(df.Series))

	for _, s := range df.Series {
		vals := make([]interface{}, 0, len(rows))
		for _, r := range rows {
			vals = append(vals, s.Value(r))
		}

		switch s.(type) {
		case *dataframe.SeriesFloat64:
			series = append(series, dataframe.NewSeriesFloat64(s.Name(), nil, vals...))
		case *dataframe.SeriesInt64:
			series = append(series, dataframe.NewSeriesInt64(s.Name(), nil, vals...))
		case *dataframe.SeriesTime:
			series = append(series, dataframe.NewSeriesTime(s.Name(), nil, vals...))
		default:
			series = append(series, dataframe.NewSeriesString(s.Name(), nil, vals...))
		}
	}

	return dataframe.NewDataFrame(series...)
}
