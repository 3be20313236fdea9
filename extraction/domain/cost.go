package domain

import (
	"math"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/doitintl/hello/extraction-utility/common"
)

// PricePerTBScan is the default on-demand analysis price in USD per TiB.
const PricePerTBScan = 5.0

const costPrecision = 1e6

// QueryStatistics are the billing figures of a finished query job. BigQuery may omit any of them.
type QueryStatistics struct {
	TotalBytesProcessed bigquery.NullInt64
	TotalBytesBilled    bigquery.NullInt64
	SlotMillis          bigquery.NullInt64
	CacheHit            bigquery.NullBool
}

// CalculateCost converts scanned bytes to USD. Null and zero byte counts cost exactly 0.
func CalculateCost(bytesProcessed bigquery.NullInt64, pricePerTiB float64) float64 {
	if !bytesProcessed.Valid || bytesProcessed.Int64 <= 0 {
		return 0
	}

	return float64(bytesProcessed.Int64) / float64(common.TebiByte) * pricePerTiB
}

// RoundCost rounds a cost to 6 decimal places.
func RoundCost(cost float64) float64 {
	return math.Round(cost*costPrecision) / costPrecision
}

// CostMicros converts a rounded cost to integer micro dollars, so that sums do not depend on order.
func CostMicros(cost float64) int64 {
	return int64(math.Round(cost * costPrecision))
}

func FromCostMicros(micros int64) float64 {
	return float64(micros) / costPrecision
}

// CostRecord is the billing outcome of one successful query attempt.
type CostRecord struct {
	Timestamp      time.Time
	TableLabel     string
	BytesProcessed int64
	BytesBilled    int64
	SlotMillis     int64
	CacheHit       bool
	// ExecutedBy is the name of the execution context whose attempt succeeded.
	ExecutedBy    string
	EstimatedCost float64
}

// NewCostRecord builds the record of a successful attempt. The cost is rounded here and nowhere else.
func NewCostRecord(label, executedBy string, ts time.Time, stats QueryStatistics, pricePerTiB float64) CostRecord {
	return CostRecord{
		Timestamp:      ts,
		TableLabel:     label,
		BytesProcessed: nullInt64(stats.TotalBytesProcessed),
		BytesBilled:    nullInt64(stats.TotalBytesBilled),
		SlotMillis:     nullInt64(stats.SlotMillis),
		CacheHit:       stats.CacheHit.Valid && stats.CacheHit.Bool,
		ExecutedBy:     executedBy,
		EstimatedCost:  RoundCost(CalculateCost(stats.TotalBytesProcessed, pricePerTiB)),
	}
}

func nullInt64(v bigquery.NullInt64) int64 {
	if !v.Valid || v.Int64 < 0 {
		return 0
	}

	return v.Int64
}

type Execution struct {
	Timestamp      time.Time `json:"timestamp"`
	BytesProcessed int64     `json:"bytes_processed"`
	BytesBilled    int64     `json:"bytes_billed"`
	SlotMillis     int64     `json:"slot_ms"`
	CacheHit       bool      `json:"cache_hit"`
	ExecutedBy     string    `json:"executed_by"`
	EstimatedCost  float64   `json:"estimated_cost_usd"`
}

type TableCost struct {
	TableName           string      `json:"table_name"`
	TotalBytesProcessed int64       `json:"total_bytes_processed"`
	TotalEstimatedCost  float64     `json:"total_estimated_cost_usd"`
	QueryCount          int         `json:"query_count"`
	Executions          []Execution `json:"executions"`
}

type ReportSummary struct {
	Timestamp           time.Time `json:"timestamp"`
	TotalTables         int       `json:"total_tables"`
	TotalQueries        int       `json:"total_queries"`
	TotalBytesProcessed int64     `json:"total_bytes_processed"`
	TotalEstimatedCost  float64   `json:"total_estimated_cost_usd"`
}

// CostSummary is the cost report of a run.
type CostSummary struct {
	Summary     ReportSummary `json:"summary"`
	CostByTable []TableCost   `json:"cost_by_table"`
}
