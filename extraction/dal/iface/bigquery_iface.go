//go:generate mockery --name ExecutionContext --output ../mocks --outpkg mocks --case=underscore
//go:generate mockery --name DatasetLister --output ../mocks --outpkg mocks --case=underscore
//go:generate mockery --name QueryHandler --output ../mocks --outpkg mocks --case=underscore
//go:generate mockery --name RowIterator --output ../mocks --outpkg mocks --case=underscore
//go:generate mockery --name DatasetIterator --output ../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/doitintl/hello/extraction-utility/extraction/domain"
)

// ExecutionContext is an authenticated handle bound to a single project that can run queries.
type ExecutionContext interface {
	Name() string
	ProjectID() string
	Location() string
	RunQuery(ctx context.Context, query string) (*domain.QueryResult, error)
}

type DatasetLister interface {
	ListDatasets(ctx context.Context, projectID string) ([]string, error)
}

// RowIterator is the subset of *bigquery.RowIterator the dal reads.
type RowIterator interface {
	Next(dst interface{}) error
	Schema() bigquery.Schema
}

// DatasetIterator is the subset of *bigquery.DatasetIterator used for discovery.
type DatasetIterator interface {
	Next() (*bigquery.Dataset, error)
}

// QueryHandler runs a configured query job to completion.
type QueryHandler interface {
	Read(ctx context.Context, query *bigquery.Query) (RowIterator, *bigquery.JobStatistics, error)
}
