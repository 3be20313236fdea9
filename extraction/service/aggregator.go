package service

import (
	"sort"
	"time"

	"github.com/doitintl/hello/extraction-utility/extraction/domain"
)

type tableGroup struct {
	cost   domain.TableCost
	micros int64
}

// Aggregate groups cost records by exact label. Groups are ranked by total
// cost, descending, keeping first-seen order between equal costs. Costs are
// summed as integer micro dollars so totals do not depend on record order.
func Aggregate(records []domain.CostRecord, now time.Time) domain.CostSummary {
	var groups []*tableGroup

	index := make(map[string]*tableGroup)

	summary := domain.CostSummary{
		Summary: domain.ReportSummary{
			Timestamp:    now,
			TotalQueries: len(records),
		},
		CostByTable: []domain.TableCost{},
	}

	var totalMicros int64

	for _, r := range records {
		g, ok := index[r.TableLabel]
		if !ok {
			g = &tableGroup{cost: domain.TableCost{TableName: r.TableLabel}}
			index[r.TableLabel] = g
			groups = append(groups, g)
		}

		micros := domain.CostMicros(r.EstimatedCost)

		g.micros += micros
		g.cost.TotalBytesProcessed += r.BytesProcessed
		g.cost.QueryCount++
		g.cost.Executions = append(g.cost.Executions, domain.Execution{
			Timestamp:      r.Timestamp,
			BytesProcessed: r.BytesProcessed,
			BytesBilled:    r.BytesBilled,
			SlotMillis:     r.SlotMillis,
			CacheHit:       r.CacheHit,
			ExecutedBy:     r.ExecutedBy,
			EstimatedCost:  r.EstimatedCost,
		})

		totalMicros += micros
		summary.Summary.TotalBytesProcessed += r.BytesProcessed
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].micros > groups[j].micros
	})

	for _, g := range groups {
		g.cost.TotalEstimatedCost = domain.FromCostMicros(g.micros)
		summary.CostByTable = append(summary.CostByTable, g.cost)
	}

	summary.Summary.TotalTables = len(groups)
	summary.Summary.TotalEstimatedCost = domain.FromCostMicros(totalMicros)

	return summary
}
