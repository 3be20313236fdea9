package service

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/hashicorp/go-multierror"

	"github.com/doitintl/hello/extraction-utility/common"
	"github.com/doitintl/hello/extraction-utility/extraction/dal/iface"
	"github.com/doitintl/hello/extraction-utility/extraction/domain"
	"github.com/doitintl/hello/extraction-utility/logger"
)

// Target is the project and region whose metadata is extracted, and where outputs go.
type Target struct {
	ProjectID string
	Region    string
	OutputDir string
}

// ProcessResult holds what one catalog template produced.
type ProcessResult struct {
	Records []domain.CostRecord
	Saved   []domain.SavedFile
	Err     error
}

// FanOut runs a catalog template once, or once per dataset, depending on its scope.
type FanOut struct {
	loggerProvider logger.Provider
	executor       *Executor
	saver          iface.Saver
	errorReporter  ErrorReporter
	contexts       []iface.ExecutionContext
	target         Target
}

// NewFanOut returns a controller. errorReporter may be nil.
func NewFanOut(
	loggerProvider logger.Provider,
	executor *Executor,
	saver iface.Saver,
	errorReporter ErrorReporter,
	contexts []iface.ExecutionContext,
	target Target,
) *FanOut {
	return &FanOut{
		loggerProvider: loggerProvider,
		executor:       executor,
		saver:          saver,
		errorReporter:  errorReporter,
		contexts:       contexts,
		target:         target,
	}
}

func (f *FanOut) Process(ctx context.Context, tmpl domain.QueryTemplate, datasets []string) *ProcessResult {
	res := &processState{ProcessResult: &ProcessResult{}}

	switch tmpl.Scope {
	case domain.ScopeProjectWide:
		f.processProjectWide(ctx, tmpl, res)
	case domain.ScopeDatasetScoped:
		f.processPerDataset(ctx, tmpl, datasets, res)
	case domain.ScopeDatasetScopedMerge:
		f.processMerged(ctx, tmpl, datasets, res)
	default:
		res.fail(fmt.Errorf("query %s: %w: %q", tmpl.ID, domain.ErrInvalidScope, tmpl.Scope))
	}

	res.Err = res.errs.ErrorOrNil()

	return res.ProcessResult
}

type processState struct {
	*ProcessResult
	errs *multierror.Error
}

func (s *processState) fail(err error) {
	s.errs = multierror.Append(s.errs, err)
}

func (f *FanOut) replacements(dataset string) domain.Replacements {
	return domain.Replacements{
		ProjectID: f.target.ProjectID,
		Region:    domain.RegionQualifier(f.target.Region),
		Dataset:   dataset,
	}
}

// baseLabel is derived from the template with only project and region filled in,
// so every dataset of a template shares it.
func (f *FanOut) baseLabel(tmpl domain.QueryTemplate) string {
	return domain.ExtractTableName(domain.QueryReplacer(tmpl.Template, f.replacements("")))
}

func (f *FanOut) processProjectWide(ctx context.Context, tmpl domain.QueryTemplate, res *processState) {
	l := f.loggerProvider(ctx)

	label := f.baseLabel(tmpl)
	query := domain.QueryReplacer(tmpl.Template, f.replacements(""))

	result, record, err := f.executor.Execute(ctx, f.contexts, query, label)
	if err != nil {
		res.fail(f.reportFailure(l, tmpl.ID, "", err))
		return
	}

	res.Records = append(res.Records, *record)

	f.persist(ctx, l, result, label, domain.ProjectWideDatasetLabel, res)
}

func (f *FanOut) processPerDataset(ctx context.Context, tmpl domain.QueryTemplate, datasets []string, res *processState) {
	l := f.loggerProvider(ctx)

	if len(datasets) == 0 {
		l.Warningf("query %s is dataset scoped but no datasets were found in project %s, skipping", tmpl.ID, f.target.ProjectID)
		return
	}

	base := f.baseLabel(tmpl)

	for i, dataset := range datasets {
		l.Infof("query %s: processing dataset %s (%d/%d)", tmpl.ID, dataset, i+1, len(datasets))

		label := domain.DatasetLabel(base, dataset)
		query := domain.QueryReplacer(tmpl.Template, f.replacements(dataset))

		result, record, err := f.executor.Execute(ctx, f.contexts, query, label)
		if err != nil {
			res.fail(f.reportFailure(l, tmpl.ID, dataset, err))
			continue
		}

		res.Records = append(res.Records, *record)

		f.persist(ctx, l, result, label, dataset, res)
	}
}

// processMerged concatenates the rows of every dataset into one output. Each
// dataset still yields its own cost record, labeled with the base label, so
// the aggregated cost of the template is the sum across datasets.
func (f *FanOut) processMerged(ctx context.Context, tmpl domain.QueryTemplate, datasets []string, res *processState) {
	l := f.loggerProvider(ctx)

	if len(datasets) == 0 {
		l.Warningf("query %s is dataset scoped but no datasets were found in project %s, skipping", tmpl.ID, f.target.ProjectID)
		return
	}

	label := f.baseLabel(tmpl)
	merged := &domain.QueryResult{}

	var (
		totalMicros int64
		succeeded   int
	)

	for i, dataset := range datasets {
		l.Infof("query %s: processing dataset %s (%d/%d)", tmpl.ID, dataset, i+1, len(datasets))

		query := domain.QueryReplacer(tmpl.Template, f.replacements(dataset))

		result, record, err := f.executor.Execute(ctx, f.contexts, query, label)
		if err != nil {
			res.fail(f.reportFailure(l, tmpl.ID, dataset, err))
			continue
		}

		res.Records = append(res.Records, *record)
		merged.Append(result)

		totalMicros += domain.CostMicros(record.EstimatedCost)
		succeeded++
	}

	l.Infof("query %s: total estimated cost across %d/%d datasets: $%.6f",
		tmpl.ID, succeeded, len(datasets), domain.FromCostMicros(totalMicros))

	if succeeded == 0 {
		return
	}

	f.persist(ctx, l, merged, label, domain.AllDatasetsLabel, res)
}

func (f *FanOut) persist(
	ctx context.Context,
	l logger.ILogger,
	result *domain.QueryResult,
	label string,
	datasetLabel string,
	res *processState,
) {
	if result.Empty() {
		l.Warningf("query %s for %s returned no rows, nothing to save", label, datasetLabel)
		return
	}

	saved, err := f.saver.Save(ctx, result, domain.SaveRequest{
		OutputDir:    f.target.OutputDir,
		ProjectID:    f.target.ProjectID,
		Region:       f.target.Region,
		DatasetLabel: datasetLabel,
		TableLabel:   label,
	})
	if err != nil {
		l.Errorf("failed to save %s for %s: %v", label, datasetLabel, err)
		res.fail(fmt.Errorf("save %s for %s: %w", label, datasetLabel, err))

		return
	}

	res.Saved = append(res.Saved, saved)

	l.Infof("saved %d rows to %s (%s)", saved.Rows, saved.Path, common.FormatMebiBytes(saved.SizeBytes))
}

func (f *FanOut) reportFailure(l logger.ILogger, id domain.QueryID, dataset string, err error) error {
	stack := debug.Stack()

	if dataset == "" {
		l.Errorf("query %s failed: %v\n%s", id, err, stack)
		err = fmt.Errorf("query %s: %w", id, err)
	} else {
		l.Errorf("query %s failed for dataset %s: %v\n%s", id, dataset, err, stack)
		err = fmt.Errorf("query %s dataset %s: %w", id, dataset, err)
	}

	if f.errorReporter != nil {
		f.errorReporter.Report(err, stack)
	}

	return err
}
