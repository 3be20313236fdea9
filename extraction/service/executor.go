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

// Executor runs a query against an ordered list of execution contexts,
// stopping at the first context that succeeds.
type Executor struct {
	loggerProvider logger.Provider
	pricePerTiB    float64
	queryTimeout   time.Duration
	timeNow        func() time.Time
}

func NewExecutor(loggerProvider logger.Provider, pricePerTiB float64, queryTimeout time.Duration) *Executor {
	return &Executor{
		loggerProvider: loggerProvider,
		pricePerTiB:    pricePerTiB,
		queryTimeout:   queryTimeout,
		timeNow:        time.Now,
	}
}

// Execute tries every context once, in order. The cost record belongs to the
// context whose attempt succeeded.
func (e *Executor) Execute(
	ctx context.Context,
	contexts []iface.ExecutionContext,
	query string,
	label string,
) (*domain.QueryResult, *domain.CostRecord, error) {
	if len(contexts) == 0 {
		return nil, nil, ErrNoExecutionContexts
	}

	l := e.loggerProvider(ctx)

	var attempts *multierror.Error

	for i, ec := range contexts {
		result, err := e.attempt(ctx, ec, query)
		if err != nil {
			l.Infof("query %s failed in %s context (project %s): %v", label, ec.Name(), ec.ProjectID(), err)

			attempts = multierror.Append(attempts, fmt.Errorf("%s context: %w", ec.Name(), err))

			if i+1 < len(contexts) {
				l.Infof("retrying query %s in %s context", label, contexts[i+1].Name())
			}

			continue
		}

		record := domain.NewCostRecord(label, ec.Name(), e.timeNow(), result.Statistics, e.pricePerTiB)

		l.Infof("query %s processed %s (%d bytes), estimated cost $%.6f",
			label,
			common.FormatMebiBytes(record.BytesProcessed),
			record.BytesProcessed,
			record.EstimatedCost,
		)

		return result, &record, nil
	}

	return nil, nil, &AttemptsExhaustedError{
		Label:    label,
		Attempts: attempts,
	}
}

func (e *Executor) attempt(ctx context.Context, ec iface.ExecutionContext, query string) (*domain.QueryResult, error) {
	if e.queryTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, e.queryTimeout)
		defer cancel()
	}

	result, err := ec.RunQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	if result == nil {
		result = &domain.QueryResult{}
	}

	return result, nil
}
