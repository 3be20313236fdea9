package domain

import (
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"

	"github.com/doitintl/hello/extraction-utility/common"
)

func TestCalculateCost(t *testing.T) {
	tests := []struct {
		name  string
		bytes bigquery.NullInt64
		rate  float64
		want  float64
	}{
		{name: "null", bytes: bigquery.NullInt64{}, rate: PricePerTBScan, want: 0},
		{name: "zero", bytes: bigquery.NullInt64{Int64: 0, Valid: true}, rate: PricePerTBScan, want: 0},
		{name: "negative is treated as zero", bytes: bigquery.NullInt64{Int64: -10, Valid: true}, rate: PricePerTBScan, want: 0},
		{name: "one TiB", bytes: bigquery.NullInt64{Int64: 1099511627776, Valid: true}, rate: PricePerTBScan, want: 5},
		{name: "half TiB custom rate", bytes: bigquery.NullInt64{Int64: common.TebiByte / 2, Valid: true}, rate: 6.25, want: 3.125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateCost(tt.bytes, tt.rate))
		})
	}
}

func TestCalculateCostIsLinear(t *testing.T) {
	for _, b := range []int64{1, 10485760, 123456789012, 3 * common.TebiByte, 987654321098765} {
		want := (float64(b) / float64(common.TebiByte)) * PricePerTBScan
		assert.Equal(t, want, CalculateCost(bigquery.NullInt64{Int64: b, Valid: true}, PricePerTBScan))
	}
}

func TestNewCostRecord(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		stats QueryStatistics
		want  CostRecord
	}{
		{
			name: "exactly one TiB",
			stats: QueryStatistics{
				TotalBytesProcessed: bigquery.NullInt64{Int64: 1099511627776, Valid: true},
				TotalBytesBilled:    bigquery.NullInt64{Int64: 1099511627776, Valid: true},
				SlotMillis:          bigquery.NullInt64{Int64: 4200, Valid: true},
				CacheHit:            bigquery.NullBool{Bool: false, Valid: true},
			},
			want: CostRecord{
				Timestamp:      ts,
				TableLabel:     "TABLES",
				BytesProcessed: 1099511627776,
				BytesBilled:    1099511627776,
				SlotMillis:     4200,
				ExecutedBy:     "job",
				EstimatedCost:  5,
			},
		},
		{
			name:  "missing statistics",
			stats: QueryStatistics{},
			want: CostRecord{
				Timestamp:  ts,
				TableLabel: "TABLES",
				ExecutedBy: "job",
			},
		},
		{
			name: "cost is rounded to 6 decimals",
			stats: QueryStatistics{
				TotalBytesProcessed: bigquery.NullInt64{Int64: 10485760, Valid: true},
			},
			want: CostRecord{
				Timestamp:      ts,
				TableLabel:     "TABLES",
				BytesProcessed: 10485760,
				ExecutedBy:     "job",
				EstimatedCost:  0.000048,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewCostRecord("TABLES", "job", ts, tt.stats, PricePerTBScan))
		})
	}
}

func TestCostMicros(t *testing.T) {
	assert.Equal(t, int64(5000000), CostMicros(5))
	assert.Equal(t, int64(48), CostMicros(0.000048))
	assert.Equal(t, 0.000048, FromCostMicros(48))
	assert.Equal(t, 0.123457, RoundCost(0.1234567))
}
