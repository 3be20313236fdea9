package dal

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/doitintl/hello/extraction-utility/extraction/dal/iface"
	"github.com/doitintl/hello/extraction-utility/extraction/domain"
	"github.com/doitintl/hello/extraction-utility/times"
)

// ReportWriter persists the run's cost summary as query_costs_{timestamp}.json.
type ReportWriter struct {
	store iface.FileStore
}

func NewReportWriter(store iface.FileStore) *ReportWriter {
	return &ReportWriter{store: store}
}

func (w *ReportWriter) WriteReport(ctx context.Context, outputDir string, summary domain.CostSummary) (string, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", err
	}

	return w.store.Put(ctx, outputDir, ReportFileName(summary), data)
}

func ReportFileName(summary domain.CostSummary) string {
	return fmt.Sprintf("query_costs_%s.json", times.FileStamp(summary.Summary.Timestamp))
}
