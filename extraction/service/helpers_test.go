package service

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/mock"

	dalMocks "github.com/doitintl/hello/extraction-utility/extraction/dal/mocks"
	"github.com/doitintl/hello/extraction-utility/extraction/domain"
	"github.com/doitintl/hello/extraction-utility/logger"
	loggerMocks "github.com/doitintl/hello/extraction-utility/logger/mocks"
)

const (
	oneTiB = int64(1099511627776)

	targetProject = "target-project"
	targetRegion  = "europe-west2"
	outputDir     = "/tmp/extraction"
)

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

var testTarget = Target{
	ProjectID: targetProject,
	Region:    targetRegion,
	OutputDir: outputDir,
}

// newLoggerMock accepts any info and debug output. Warnings and errors are left
// to each test so they can be asserted.
func newLoggerMock(t *testing.T) *loggerMocks.ILogger {
	l := loggerMocks.NewILogger(t)
	l.On("Infof", mock.Anything, mock.Anything).Maybe()
	l.On("Debugf", mock.Anything, mock.Anything).Maybe()
	l.On("SetLabels", mock.Anything).Maybe()
	l.On("SetLabel", mock.Anything, mock.Anything).Maybe()

	return l
}

func loggerProviderFor(l logger.ILogger) logger.Provider {
	return func(ctx context.Context) logger.ILogger {
		return l
	}
}

func newContextMock(t *testing.T, name string) *dalMocks.ExecutionContext {
	ec := dalMocks.NewExecutionContext(t)
	ec.On("Name").Return(name).Maybe()
	ec.On("ProjectID").Return(name + "-project").Maybe()
	ec.On("Location").Return(name + "-location").Maybe()

	return ec
}

func newTestExecutor(l logger.ILogger) *Executor {
	e := NewExecutor(loggerProviderFor(l), domain.PricePerTBScan, 0)
	e.timeNow = func() time.Time { return testNow }

	return e
}

func resultWithBytes(bytes int64, rows ...[]bigquery.Value) *domain.QueryResult {
	return &domain.QueryResult{
		Schema: bigquery.Schema{{Name: "name", Type: bigquery.StringFieldType}},
		Rows:   rows,
		Statistics: domain.QueryStatistics{
			TotalBytesProcessed: bigquery.NullInt64{Int64: bytes, Valid: true},
		},
	}
}
