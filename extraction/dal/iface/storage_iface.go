//go:generate mockery --name Saver --output ../mocks --outpkg mocks --case=underscore
//go:generate mockery --name ReportWriter --output ../mocks --outpkg mocks --case=underscore
//go:generate mockery --name FileStore --output ../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"github.com/doitintl/hello/extraction-utility/extraction/domain"
)

// FileStore writes a named blob into an output directory, a local path or a gs:// prefix.
type FileStore interface {
	Put(ctx context.Context, dir, name string, data []byte) (string, error)
}

type Saver interface {
	Save(ctx context.Context, result *domain.QueryResult, req domain.SaveRequest) (domain.SavedFile, error)
}

type ReportWriter interface {
	WriteReport(ctx context.Context, outputDir string, summary domain.CostSummary) (string, error)
}
