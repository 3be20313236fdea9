package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/doitintl/hello/extraction-utility/common"
	"github.com/doitintl/hello/extraction-utility/extraction/dal/iface"
	"github.com/doitintl/hello/extraction-utility/extraction/domain"
	"github.com/doitintl/hello/extraction-utility/logger"
)

// RunResult is the outcome of a complete extraction run. Failures holds every
// per-query error; they do not fail the run.
type RunResult struct {
	Summary    domain.CostSummary
	ReportPath string
	Saved      []domain.SavedFile
	Failures   error
}

type ExtractionService struct {
	loggerProvider logger.Provider
	catalog        domain.Catalog
	fanOut         *FanOut
	datasetLister  iface.DatasetLister
	reportWriter   iface.ReportWriter
	datasets       []string
	timeNow        func() time.Time
}

// NewExtractionService returns the run orchestrator. An empty datasets list
// means the datasets of the target project are discovered at run time.
func NewExtractionService(
	loggerProvider logger.Provider,
	catalog domain.Catalog,
	fanOut *FanOut,
	datasetLister iface.DatasetLister,
	reportWriter iface.ReportWriter,
	datasets []string,
) *ExtractionService {
	return &ExtractionService{
		loggerProvider: loggerProvider,
		catalog:        catalog,
		fanOut:         fanOut,
		datasetLister:  datasetLister,
		reportWriter:   reportWriter,
		datasets:       datasets,
		timeNow:        time.Now,
	}
}

// Run executes the whole catalog in order and writes the cost report once.
// Only a dataset discovery or report write failure is returned as an error.
func (s *ExtractionService) Run(ctx context.Context) (*RunResult, error) {
	l := s.loggerProvider(ctx)

	l.SetLabels(map[string]string{
		common.LabelKeyFeature.String(): common.FeatureExtraction,
		common.LabelKeyModule.String():  common.ModuleExtractor,
	})

	for _, ec := range s.fanOut.contexts {
		l.Infof("%s context: project %s, location %s", ec.Name(), ec.ProjectID(), ec.Location())
	}

	l.Infof("target: project %s, region %s, output %s",
		s.fanOut.target.ProjectID, s.fanOut.target.Region, s.fanOut.target.OutputDir)

	datasets, err := s.resolveDatasets(ctx)
	if err != nil {
		return nil, err
	}

	var (
		records []domain.CostRecord
		saved   []domain.SavedFile
		errs    *multierror.Error
	)

	for _, tmpl := range s.catalog {
		l.SetLabel(common.LabelKeyQueryID.String(), string(tmpl.ID))
		l.Infof("starting query %s (%s)", tmpl.ID, tmpl.Scope)

		res := s.fanOut.Process(ctx, tmpl, datasets)

		records = append(records, res.Records...)
		saved = append(saved, res.Saved...)

		if res.Err != nil {
			errs = multierror.Append(errs, res.Err)
		}

		l.Infof("finished query %s", tmpl.ID)
	}

	summary := Aggregate(records, s.timeNow())
	s.logSummary(l, summary)

	reportPath, err := s.reportWriter.WriteReport(ctx, s.fanOut.target.OutputDir, summary)
	if err != nil {
		return nil, fmt.Errorf("write cost report: %w", err)
	}

	l.Infof("cost report saved to %s", reportPath)

	if errs != nil {
		l.Warningf("run finished with %d failed queries: %v", len(errs.Errors), errs)
	}

	return &RunResult{
		Summary:    summary,
		ReportPath: reportPath,
		Saved:      saved,
		Failures:   errs.ErrorOrNil(),
	}, nil
}

// resolveDatasets returns the configured datasets, or discovers them when none
// are configured and the catalog has a dataset scoped template.
func (s *ExtractionService) resolveDatasets(ctx context.Context) ([]string, error) {
	l := s.loggerProvider(ctx)

	if len(s.datasets) > 0 {
		l.Infof("using %d configured datasets: %v", len(s.datasets), s.datasets)
		return s.datasets, nil
	}

	if !s.needsDatasets() {
		return nil, nil
	}

	projectID := s.fanOut.target.ProjectID

	datasets, err := s.datasetLister.ListDatasets(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list datasets of project %s: %w", projectID, err)
	}

	l.Infof("discovered %d datasets in project %s", len(datasets), projectID)

	return datasets, nil
}

func (s *ExtractionService) needsDatasets() bool {
	for _, tmpl := range s.catalog {
		if tmpl.Scope.PerDataset() {
			return true
		}
	}

	return false
}

func (s *ExtractionService) logSummary(l logger.ILogger, summary domain.CostSummary) {
	l.Infof("cost summary: %d tables, %d queries, %s processed (%sB), estimated cost $%.6f",
		summary.Summary.TotalTables,
		summary.Summary.TotalQueries,
		common.FormatMebiBytes(summary.Summary.TotalBytesProcessed),
		common.FormatNumber(float64(summary.Summary.TotalBytesProcessed), 2),
		summary.Summary.TotalEstimatedCost,
	)

	for _, table := range summary.CostByTable {
		l.Infof("  %s: %d queries, %s, $%.6f",
			table.TableName,
			table.QueryCount,
			common.FormatMebiBytes(table.TotalBytesProcessed),
			table.TotalEstimatedCost,
		)
	}
}
