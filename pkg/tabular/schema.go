package tabular

import (
	"math"

	dataframe "github.com/rocketlaunchr/dataframe-go"
)

// Column describes one column of a loaded frame: its name, inferred type,
// and how many of its values are missing.
type Column struct {
	Name  string
	Type  string
	Nulls int
}

// Schema returns the column descriptions for df, in column order.
func Schema(df *dataframe.DataFrame) []Column {
	cols := make([]Column, 0, len(df.Series))
	for _, s := range df.Series {
		cols = append(cols, Column{
			Name:  s.Name(),
			Type:  s.Type(),
			Nulls: NullCount(s),
		})
	}

	return cols
}

// NullCount returns the number of missing values in s.
func NullCount(s dataframe.Series) int {
	var nulls int

	switch v := s.(type) {
	case *dataframe.SeriesFloat64:
		for _, x := range v.Values {
			if math.IsNaN(x) {
				nulls++
			}
		}
	case *dataframe.SeriesInt64:
		for i, n := 0, v.NRows(); i < n; i++ {
			if v.Value(i) == nil {
				nulls++
			}
		}
	case *dataframe.SeriesString:
		for i, n := 0, v.NRows(); i < n; i++ {
			if v.Value(i) == nil {
				nulls++
			}
		}
	case *dataframe.SeriesTime:
		for i, n := 0, v.NRows(); i < n; i++ {
			if v.Value(i) == nil {
				nulls++
			}
		}
	default:
		for i, n := 0, s.NRows(); i < n; i++ {
			if s.Value(i) == nil {
				nulls++
			}
		}
	}

	return nulls
}
