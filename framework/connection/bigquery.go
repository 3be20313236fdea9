package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/option"

	"github.com/doitintl/hello/extraction-utility/logger"
)

var (
	ErrBigqueryInitialization = errors.New("bigquery initialization error")
)

type BigQueryClient struct {
	job    *bigquery.Client
	target *bigquery.Client
}

// NewBigQuery creates one client billed to the job project and one bound to the target project.
func NewBigQuery(ctx context.Context, log *logger.Logging, jobProjectID, targetProjectID string, opts []option.ClientOption) (*BigQueryClient, error) {
	logger := log.Logger(ctx)

	scopes := append([]option.ClientOption{option.WithScopes(bigquery.Scope)}, opts...)

	job, err := bigquery.NewClient(ctx, jobProjectID, scopes...)
	if err != nil {
		logger.Errorf("%s: %s", ErrBigqueryInitialization, err)
		return nil, ErrBigqueryInitialization
	}

	target, err := bigquery.NewClient(ctx, targetProjectID, scopes...)
	if err != nil {
		_ = job.Close()
		logger.Errorf("%s: %s", ErrBigqueryInitialization, err)

		return nil, ErrBigqueryInitialization
	}

	return &BigQueryClient{
		job:    job,
		target: target,
	}, nil
}

// JobBigquery returns the client whose project is billed for the queries.
func (c *BigQueryClient) JobBigquery() *bigquery.Client {
	return c.job
}

// TargetBigquery returns the client bound to the project being extracted.
func (c *BigQueryClient) TargetBigquery() *bigquery.Client {
	return c.target
}
