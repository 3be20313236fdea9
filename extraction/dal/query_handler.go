package dal

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/doitintl/hello/extraction-utility/extraction/dal/iface"
)

// QueryHandler submits a query job, waits for it and opens its results.
type QueryHandler struct{}

func NewQueryHandler() *QueryHandler {
	return &QueryHandler{}
}

func (h *QueryHandler) Read(ctx context.Context, query *bigquery.Query) (iface.RowIterator, *bigquery.JobStatistics, error) {
	job, err := query.Run(ctx)
	if err != nil {
		return nil, nil, err
	}

	status, err := job.Wait(ctx)
	if err != nil {
		return nil, nil, err
	}

	if err := status.Err(); err != nil {
		return nil, nil, err
	}

	iter, err := job.Read(ctx)
	if err != nil {
		return nil, nil, err
	}

	return &rowIterator{iter: iter}, status.Statistics, nil
}

type rowIterator struct {
	iter *bigquery.RowIterator
}

func (r *rowIterator) Next(dst interface{}) error {
	return r.iter.Next(dst)
}

// Schema is only populated once Next has been called.
func (r *rowIterator) Schema() bigquery.Schema {
	return r.iter.Schema
}
