package dal

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/apache/arrow/go/v15/parquet"
	"github.com/apache/arrow/go/v15/parquet/compress"
	"github.com/apache/arrow/go/v15/parquet/pqarrow"
	"github.com/goccy/go-json"

	"github.com/doitintl/hello/extraction-utility/extraction/dal/iface"
	"github.com/doitintl/hello/extraction-utility/extraction/domain"
	"github.com/doitintl/hello/extraction-utility/times"
)

const (
	parquetExtension     = ".parquet"
	timestampArrowZone   = "UTC"
	numericFloatDecimals = 9
)

// ParquetSaver writes query results as snappy compressed parquet files.
type ParquetSaver struct {
	store   iface.FileStore
	mem     memory.Allocator
	timeNow func() time.Time
}

func NewParquetSaver(store iface.FileStore) *ParquetSaver {
	return &ParquetSaver{
		store:   store,
		mem:     memory.NewGoAllocator(),
		timeNow: time.Now,
	}
}

func (s *ParquetSaver) Save(ctx context.Context, result *domain.QueryResult, req domain.SaveRequest) (domain.SavedFile, error) {
	data, err := EncodeParquet(s.mem, result)
	if err != nil {
		return domain.SavedFile{}, err
	}

	path, err := s.store.Put(ctx, req.OutputDir, FileName(req, s.timeNow()), data)
	if err != nil {
		return domain.SavedFile{}, err
	}

	return domain.SavedFile{
		Path:      path,
		Rows:      len(result.Rows),
		SizeBytes: int64(len(data)),
	}, nil
}

// FileName returns {table}_{project}_{region}_{dataset}_{timestamp}.parquet.
// The timestamp carries nanoseconds so outputs written within the same second never collide.
func FileName(req domain.SaveRequest, ts time.Time) string {
	return fmt.Sprintf("%s_%s_%s_%s_%s%s",
		req.TableLabel,
		req.ProjectID,
		req.Region,
		req.DatasetLabel,
		times.FileStampNano(ts),
		parquetExtension,
	)
}

// EncodeParquet encodes the rows of the result in schema column order.
func EncodeParquet(mem memory.Allocator, result *domain.QueryResult) ([]byte, error) {
	if len(result.Schema) == 0 {
		return nil, fmt.Errorf("cannot encode a result without columns")
	}

	schema := ArrowSchema(result.Schema)

	builder := array.NewRecordBuilder(mem, schema)
	defer builder.Release()

	for rowIdx, row := range result.Rows {
		for i, field := range result.Schema {
			var v bigquery.Value
			if i < len(row) {
				v = row[i]
			}

			if err := appendValue(builder.Field(i), v); err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", rowIdx, field.Name, err)
			}
		}
	}

	record := builder.NewRecord()
	defer record.Release()

	var buf bytes.Buffer

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))

	writer, err := pqarrow.NewFileWriter(schema, &buf, props, pqarrow.DefaultWriterProps())
	if err != nil {
		return nil, err
	}

	if err := writer.Write(record); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ArrowSchema maps the result schema to nullable arrow columns. Repeated,
// nested and non primitive columns are carried as JSON or string text.
func ArrowSchema(schema bigquery.Schema) *arrow.Schema {
	fields := make([]arrow.Field, 0, len(schema))

	for _, f := range schema {
		fields = append(fields, arrow.Field{
			Name:     f.Name,
			Type:     arrowType(f),
			Nullable: true,
		})
	}

	return arrow.NewSchema(fields, nil)
}

func arrowType(f *bigquery.FieldSchema) arrow.DataType {
	if f.Repeated {
		return arrow.BinaryTypes.String
	}

	switch f.Type {
	case bigquery.IntegerFieldType:
		return arrow.PrimitiveTypes.Int64
	case bigquery.FloatFieldType:
		return arrow.PrimitiveTypes.Float64
	case bigquery.BooleanFieldType:
		return arrow.FixedWidthTypes.Boolean
	case bigquery.TimestampFieldType:
		return &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: timestampArrowZone}
	case bigquery.BytesFieldType:
		return arrow.BinaryTypes.Binary
	default:
		return arrow.BinaryTypes.String
	}
}

func appendValue(b array.Builder, v bigquery.Value) error {
	if v == nil {
		b.AppendNull()
		return nil
	}

	switch builder := b.(type) {
	case *array.Int64Builder:
		n, ok := v.(int64)
		if !ok {
			return unexpectedValue(v)
		}

		builder.Append(n)
	case *array.Float64Builder:
		switch n := v.(type) {
		case float64:
			builder.Append(n)
		case int64:
			builder.Append(float64(n))
		default:
			return unexpectedValue(v)
		}
	case *array.BooleanBuilder:
		flag, ok := v.(bool)
		if !ok {
			return unexpectedValue(v)
		}

		builder.Append(flag)
	case *array.TimestampBuilder:
		ts, ok := v.(time.Time)
		if !ok {
			return unexpectedValue(v)
		}

		builder.Append(arrow.Timestamp(ts.UnixMicro()))
	case *array.BinaryBuilder:
		raw, ok := v.([]byte)
		if !ok {
			return unexpectedValue(v)
		}

		builder.Append(raw)
	case *array.StringBuilder:
		s, err := stringValue(v)
		if err != nil {
			return err
		}

		builder.Append(s)
	default:
		return fmt.Errorf("unsupported column builder %T", b)
	}

	return nil
}

func stringValue(v bigquery.Value) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case *big.Rat:
		return s.FloatString(numericFloatDecimals), nil
	case []bigquery.Value, map[string]bigquery.Value:
		data, err := json.Marshal(s)
		if err != nil {
			return "", err
		}

		return string(data), nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return fmt.Sprint(s), nil
	}
}

func unexpectedValue(v bigquery.Value) error {
	return fmt.Errorf("unexpected value of type %T", v)
}
