package render

import (
	"fmt"
	"math"
	"time"

	"github.com/mattn/go-runewidth"
)

// Cell formats a single dataframe value for display. Missing values (nil or
// NaN) become the null glyph, floats print with six significant digits, and
// anything wider than MaxCellWidth is truncated with an ellipsis.
func (r *Renderer) Cell(v interface{}) string {
	switch tv := v.(type) {
	case nil:
		return r.options.NullGlyph
	case float64:
		if math.IsNaN(tv) {
			return r.options.NullGlyph
		}
		return r.truncate(fmt.Sprintf("%.6g", tv))
	case time.Time:
		return r.truncate(tv.Format("2006-01-02 15:04:05"))
	case string:
		return r.truncate(tv)
	case []byte:
		return r.truncate(string(tv))
	default:
		return r.truncate(fmt.Sprint(tv))
	}
}

func (r *Renderer) truncate(s string) string {
	if r.options.MaxCellWidth <= 0 {
		return s
	}
	return runewidth.Truncate(s, r.options.MaxCellWidth, "…")
}
