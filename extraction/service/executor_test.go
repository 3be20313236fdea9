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

	"github.com/doitintl/hello/extraction-utility/extraction/dal/iface"
	"github.com/doitintl/hello/extraction-utility/extraction/domain"
)

const testQuery = "SELECT * FROM `target-project`.`region-europe-west2`.INFORMATION_SCHEMA.SCHEMATA"

func TestExecutorPrimarySucceeds(t *testing.T) {
	ctx := context.Background()
	l := newLoggerMock(t)
	primary := newContextMock(t, "job")
	secondary := newContextMock(t, "target")

	result := resultWithBytes(oneTiB, []bigquery.Value{"sales"})
	primary.On("RunQuery", ctx, testQuery).Return(result, nil).Once()

	got, record, err := newTestExecutor(l).Execute(ctx, []iface.ExecutionContext{primary, secondary}, testQuery, "SCHEMATA")
	require.NoError(t, err)

	assert.Same(t, result, got)
	assert.Equal(t, domain.CostRecord{
		Timestamp:      testNow,
		TableLabel:     "SCHEMATA",
		BytesProcessed: oneTiB,
		ExecutedBy:     "job",
		EstimatedCost:  5,
	}, *record)

	secondary.AssertNotCalled(t, "RunQuery", mock.Anything, mock.Anything)
}

func TestExecutorFallsBackExactlyOnce(t *testing.T) {
	ctx := context.Background()
	l := newLoggerMock(t)
	primary := newContextMock(t, "job")
	secondary := newContextMock(t, "target")

	primaryErr := errors.New("access denied in job project")
	result := resultWithBytes(2048)

	primary.On("RunQuery", ctx, testQuery).Return(nil, primaryErr).Once()
	secondary.On("RunQuery", ctx, testQuery).Return(result, nil).Once()

	got, record, err := newTestExecutor(l).Execute(ctx, []iface.ExecutionContext{primary, secondary}, testQuery, "SCHEMATA")
	require.NoError(t, err)

	assert.Same(t, result, got)
	assert.Equal(t, "target", record.ExecutedBy)
	assert.Equal(t, int64(2048), record.BytesProcessed)

	primary.AssertNumberOfCalls(t, "RunQuery", 1)
	secondary.AssertNumberOfCalls(t, "RunQuery", 1)
	l.AssertCalled(t, "Infof", "query %s failed in %s context (project %s): %v", mock.Anything)
}

func TestExecutorAttemptsExhausted(t *testing.T) {
	ctx := context.Background()
	l := newLoggerMock(t)
	primary := newContextMock(t, "job")
	secondary := newContextMock(t, "target")

	primaryErr := errors.New("primary failed")
	secondaryErr := errors.New("secondary failed")

	primary.On("RunQuery", ctx, testQuery).Return(nil, primaryErr).Once()
	secondary.On("RunQuery", ctx, testQuery).Return(nil, secondaryErr).Once()

	got, record, err := newTestExecutor(l).Execute(ctx, []iface.ExecutionContext{primary, secondary}, testQuery, "SCHEMATA")
	assert.Nil(t, got)
	assert.Nil(t, record)

	var exhausted *AttemptsExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, "SCHEMATA", exhausted.Label)
	assert.Len(t, exhausted.Attempts.Errors, 2)
	assert.ErrorIs(t, err, primaryErr)
	assert.ErrorIs(t, err, secondaryErr)
}

func TestExecutorWithoutContexts(t *testing.T) {
	_, _, err := newTestExecutor(newLoggerMock(t)).Execute(context.Background(), nil, testQuery, "SCHEMATA")
	assert.ErrorIs(t, err, ErrNoExecutionContexts)
}

func TestExecutorMissingStatistics(t *testing.T) {
	ctx := context.Background()
	primary := newContextMock(t, "job")

	primary.On("RunQuery", ctx, testQuery).Return(&domain.QueryResult{}, nil).Once()

	_, record, err := newTestExecutor(newLoggerMock(t)).Execute(ctx, []iface.ExecutionContext{primary}, testQuery, "SCHEMATA")
	require.NoError(t, err)

	assert.Zero(t, record.BytesProcessed)
	assert.Zero(t, record.EstimatedCost)
}

func TestExecutorAppliesQueryTimeout(t *testing.T) {
	primary := newContextMock(t, "job")

	hasDeadline := mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})

	primary.On("RunQuery", hasDeadline, testQuery).Return(resultWithBytes(1), nil).Once()

	e := newTestExecutor(newLoggerMock(t))
	e.queryTimeout = time.Minute

	_, _, err := e.Execute(context.Background(), []iface.ExecutionContext{primary}, testQuery, "SCHEMATA")
	require.NoError(t, err)
}
