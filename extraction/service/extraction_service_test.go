package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	dalMocks "github.com/doitintl/hello/extraction-utility/extraction/dal/mocks"
	"github.com/doitintl/hello/extraction-utility/extraction/domain"
)

type serviceFields struct {
	*fanOutFields
	lister       *dalMocks.DatasetLister
	reportWriter *dalMocks.ReportWriter
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		fanOutFields: newFanOutFields(t),
		lister:       dalMocks.NewDatasetLister(t),
		reportWriter: dalMocks.NewReportWriter(t),
	}
}

func (f *serviceFields) service(catalog domain.Catalog, datasets []string) *ExtractionService {
	s := NewExtractionService(
		loggerProviderFor(f.logger),
		catalog,
		f.fanOut(),
		f.lister,
		f.reportWriter,
		datasets,
	)
	s.timeNow = func() time.Time { return testNow }

	return s
}

func TestExtractionServiceRun(t *testing.T) {
	ctx := context.Background()
	f := newServiceFields(t)

	schemata := resultWithBytes(oneTiB, []bigquery.Value{"sales"})
	columns := resultWithBytes(oneTiB/4, []bigquery.Value{"orders"})

	f.primary.On("RunQuery", ctx, "SELECT * FROM `target-project`.`region-europe-west2`.INFORMATION_SCHEMA.SCHEMATA").
		Return(schemata, nil).Once()
	f.primary.On("RunQuery", ctx, columnsQuery("sales")).Return(columns, nil).Once()
	f.saver.On("Save", ctx, mock.Anything, mock.Anything).
		Return(domain.SavedFile{Path: "file.parquet", Rows: 1}, nil).Twice()

	isExpectedSummary := mock.MatchedBy(func(s domain.CostSummary) bool {
		return s.Summary.TotalQueries == 2 &&
			s.Summary.TotalTables == 2 &&
			s.Summary.TotalEstimatedCost == 6.25 &&
			s.CostByTable[0].TableName == "SCHEMATA" &&
			s.CostByTable[1].TableName == "COLUMNS_sales"
	})

	f.reportWriter.On("WriteReport", ctx, outputDir, isExpectedSummary).
		Return(outputDir+"/query_costs_20240301_100000.json", nil).Once()

	res, err := f.service(domain.Catalog{schemataTemplate, columnsTemplate}, []string{"sales"}).Run(ctx)
	require.NoError(t, err)

	assert.NoError(t, res.Failures)
	assert.Equal(t, outputDir+"/query_costs_20240301_100000.json", res.ReportPath)
	assert.Len(t, res.Saved, 2)
	f.lister.AssertNotCalled(t, "ListDatasets", mock.Anything, mock.Anything)
	f.logger.AssertCalled(t, "Infof", "%s context: project %s, location %s",
		[]interface{}{"job", "job-project", "job-location"})
	f.logger.AssertCalled(t, "Infof", "%s context: project %s, location %s",
		[]interface{}{"target", "target-project", "target-location"})
	f.logger.AssertCalled(t, "Infof", "saved %d rows to %s (%s)",
		[]interface{}{1, "file.parquet", "0.00 MB"})
}

func TestExtractionServiceRunDiscoversDatasets(t *testing.T) {
	ctx := context.Background()
	f := newServiceFields(t)

	f.lister.On("ListDatasets", ctx, targetProject).Return([]string{"ds1"}, nil).Once()
	f.primary.On("RunQuery", ctx, columnsQuery("ds1")).
		Return(resultWithBytes(10, []bigquery.Value{"orders"}), nil).Once()
	f.saver.On("Save", ctx, mock.Anything, mock.Anything).Return(domain.SavedFile{}, nil).Once()
	f.reportWriter.On("WriteReport", ctx, outputDir, mock.Anything).Return("report.json", nil).Once()

	res, err := f.service(domain.Catalog{columnsTemplate}, nil).Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Summary.Summary.TotalQueries)
}

func TestExtractionServiceRunSkipsDiscoveryForProjectWideCatalog(t *testing.T) {
	ctx := context.Background()
	f := newServiceFields(t)

	f.primary.On("RunQuery", ctx, mock.Anything).Return(resultWithBytes(0), nil).Once()
	f.logger.On("Warningf", mock.Anything, mock.Anything).Maybe()
	f.reportWriter.On("WriteReport", ctx, outputDir, mock.Anything).Return("report.json", nil).Once()

	_, err := f.service(domain.Catalog{schemataTemplate}, nil).Run(ctx)
	require.NoError(t, err)

	f.lister.AssertNotCalled(t, "ListDatasets", mock.Anything, mock.Anything)
}

func TestExtractionServiceRunDiscoveryFailure(t *testing.T) {
	ctx := context.Background()
	f := newServiceFields(t)
	listErr := errors.New("permission denied")

	f.lister.On("ListDatasets", ctx, targetProject).Return(nil, listErr).Once()

	_, err := f.service(domain.Catalog{columnsTemplate}, nil).Run(ctx)

	assert.ErrorIs(t, err, listErr)
	f.reportWriter.AssertNotCalled(t, "WriteReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtractionServiceRunPartialFailureWritesReport(t *testing.T) {
	ctx := context.Background()
	f := newServiceFields(t)

	f.primary.On("RunQuery", ctx, mock.Anything).Return(nil, errors.New("primary failed")).Once()
	f.secondary.On("RunQuery", ctx, mock.Anything).Return(nil, errors.New("secondary failed")).Once()
	f.logger.On("Errorf", mock.Anything, mock.Anything).Once()
	f.logger.On("Warningf", "run finished with %d failed queries: %v", mock.Anything).Once()
	f.reporter.On("Report", mock.Anything, mock.Anything).Once()

	isEmptySummary := mock.MatchedBy(func(s domain.CostSummary) bool {
		return s.Summary.TotalQueries == 0 && len(s.CostByTable) == 0
	})

	f.reportWriter.On("WriteReport", ctx, outputDir, isEmptySummary).Return("report.json", nil).Once()

	res, err := f.service(domain.Catalog{schemataTemplate}, nil).Run(ctx)
	require.NoError(t, err)

	var exhausted *AttemptsExhaustedError
	assert.ErrorAs(t, res.Failures, &exhausted)
}

func TestExtractionServiceRunReportFailure(t *testing.T) {
	ctx := context.Background()
	f := newServiceFields(t)
	writeErr := errors.New("bucket not found")

	f.primary.On("RunQuery", ctx, mock.Anything).Return(resultWithBytes(0), nil).Once()
	f.logger.On("Warningf", mock.Anything, mock.Anything).Maybe()
	f.reportWriter.On("WriteReport", ctx, outputDir, mock.Anything).Return("", writeErr).Once()

	_, err := f.service(domain.Catalog{schemataTemplate}, nil).Run(ctx)

	assert.ErrorIs(t, err, writeErr)
}
