package tabular

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	goparquet "github.com/fraugster/parquet-go"
	"github.com/fraugster/parquet-go/parquet"
	"github.com/fraugster/parquet-go/parquetschema"
	"github.com/pkg/errors"
	dataframe "github.com/rocketlaunchr/dataframe-go"
)

// readParquet loads a parquet file into a dataframe. Physical types map to
// the closest dataframe series: byte arrays become strings, integers widen
// to int64, floats widen to float64, booleans render as "true"/"false", and
// int64 columns annotated with a TIMESTAMP logical type become time series.
func readParquet(path string) (*dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	fr, err := goparquet.NewFileReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read parquet: %s", path)
	}

	cols := fr.GetSchemaDefinition().RootColumn.Children
	values := make([][]interface{}, len(cols))

	for {
		row, err := fr.NextRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read parquet row: %s", path)
		}

		for i, col := range cols {
			values[i] = append(values[i], parquetValue(row[col.SchemaElement.Name], col.SchemaElement))
		}
	}

	series := make([]dataframe.Series, len(cols))
	for i, col := range cols {
		series[i] = parquetSeries(col.SchemaElement, values[i])
	}

	return dataframe.NewDataFrame(series...), nil
}

// parquetValue converts a raw parquet value to the Go value its series holds.
func parquetValue(raw interface{}, el *parquet.SchemaElement) interface{} {
	if raw == nil || el.Type == nil {
		return nil
	}

	switch *el.Type {
	case parquet.Type_BYTE_ARRAY, parquet.Type_FIXED_LEN_BYTE_ARRAY:
		if b, ok := raw.([]byte); ok {
			return string(b)
		}
	case parquet.Type_INT32:
		if v, ok := raw.(int32); ok {
			return int64(v)
		}
	case parquet.Type_INT64:
		if v, ok := raw.(int64); ok {
			if t, ok := timestampValue(v, el); ok {
				return t
			}
			return v
		}
	case parquet.Type_FLOAT:
		if v, ok := raw.(float32); ok {
			return float64(v)
		}
	case parquet.Type_DOUBLE:
		if v, ok := raw.(float64); ok {
			return v
		}
	case parquet.Type_BOOLEAN:
		if v, ok := raw.(bool); ok {
			if v {
				return "true"
			}
			return "false"
		}
	}

	return fmt.Sprint(raw)
}

// timestampValue interprets v according to el's TIMESTAMP logical type, if any.
func timestampValue(v int64, el *parquet.SchemaElement) (time.Time, bool) {
	lt := el.LogicalType
	if lt == nil || !lt.IsSetTIMESTAMP() {
		return time.Time{}, false
	}

	unit := lt.TIMESTAMP.Unit
	switch {
	case unit.IsSetMILLIS():
		return time.UnixMilli(v).UTC(), true
	case unit.IsSetMICROS():
		return time.UnixMicro(v).UTC(), true
	case unit.IsSetNANOS():
		return time.Unix(0, v).UTC(), true
	}

	return time.Time{}, false
}

// parquetSeries builds the dataframe series matching el's type.
func parquetSeries(el *parquet.SchemaElement, vals []interface{}) dataframe.Series {
	name := el.Name
	if el.Type == nil {
		return dataframe.NewSeriesString(name, nil, vals...)
	}

	switch *el.Type {
	case parquet.Type_INT32:
		return dataframe.NewSeriesInt64(name, nil, vals...)
	case parquet.Type_INT64:
		if el.LogicalType != nil && el.LogicalType.IsSetTIMESTAMP() {
			return dataframe.NewSeriesTime(name, nil, vals...)
		}
		return dataframe.NewSeriesInt64(name, nil, vals...)
	case parquet.Type_FLOAT, parquet.Type_DOUBLE:
		return dataframe.NewSeriesFloat64(name, nil, vals...)
	default:
		return dataframe.NewSeriesString(name, nil, vals...)
	}
}

// writeParquet stores df as a snappy-compressed parquet file. All columns are
// optional; string series become annotated byte arrays and time series become
// millisecond UTC timestamps.
func writeParquet(path string, df *dataframe.DataFrame) error {
	sd, err := parquetSchema(df)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create file: %s", path)
	}
	defer func() { _ = f.Close() }()

	fw := goparquet.NewFileWriter(f,
		goparquet.WithSchemaDefinition(sd),
		goparquet.WithCompressionCodec(parquet.CompressionCodec_SNAPPY),
		goparquet.WithCreator("peektab"),
	)

	nrows := df.NRows()
	for i := 0; i < nrows; i++ {
		row := make(map[string]interface{}, len(df.Series))
		for _, s := range df.Series {
			v := s.Value(i)
			if v == nil {
				continue
			}

			switch tv := v.(type) {
			case string:
				row[s.Name()] = []byte(tv)
			case int64:
				row[s.Name()] = tv
			case float64:
				if math.IsNaN(tv) {
					continue
				}
				row[s.Name()] = tv
			case time.Time:
				row[s.Name()] = tv.UnixMilli()
			case bool:
				row[s.Name()] = tv
			default:
				row[s.Name()] = []byte(fmt.Sprint(tv))
			}
		}

		if err := fw.AddData(row); err != nil {
			return errors.Wrapf(err, "failed to write parquet row: %s", path)
		}
	}

	return errors.Wrapf(fw.Close(), "failed to finalize parquet: %s", path)
}

// parquetSchema derives a parquet schema definition from df's series types.
func parquetSchema(df *dataframe.DataFrame) (*parquetschema.SchemaDefinition, error) {
	var b strings.Builder
	b.WriteString("message peektab {\n")
	for _, s := range df.Series {
		switch s.Type() {
		case "float64":
			fmt.Fprintf(&b, "  optional double %s;\n", s.Name())
		case "int64":
			fmt.Fprintf(&b, "  optional int64 %s;\n", s.Name())
		case "time":
			fmt.Fprintf(&b, "  optional int64 %s (TIMESTAMP(MILLIS, true));\n", s.Name())
		default:
			fmt.Fprintf(&b, "  optional binary %s (STRING);\n", s.Name())
		}
	}
	b.WriteString("}\n")

	sd, err := parquetschema.ParseSchemaDefinition(b.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to build parquet schema")
	}

	return sd, nil
}
