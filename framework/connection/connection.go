package connection

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/hashicorp/go-multierror"
	"google.golang.org/api/option"

	"github.com/doitintl/hello/extraction-utility/logger"
)

type Options struct {
	JobProjectID    string
	TargetProjectID string
	// ClientOptions carry the credential shared by every client, see ClientOptions.
	ClientOptions []option.ClientOption
	// WithStorage creates a cloud storage client for gs:// outputs.
	WithStorage bool
}

type Connection struct {
	*BigQueryClient
	CloudStorageClient *storage.Client
}

// NewConnection initializes the clients of a run.
func NewConnection(ctx context.Context, log *logger.Logging, opts Options) (*Connection, error) {
	bq, err := NewBigQuery(ctx, log, opts.JobProjectID, opts.TargetProjectID, opts.ClientOptions)
	if err != nil {
		return nil, err
	}

	conn := &Connection{
		BigQueryClient: bq,
	}

	if opts.WithStorage {
		gcs, err := NewCloudStorage(ctx, log, opts.ClientOptions)
		if err != nil {
			_ = conn.Close()
			return nil, err
		}

		conn.CloudStorageClient = gcs
	}

	return conn, nil
}

func (c *Connection) Close() error {
	var errs *multierror.Error

	if c.job != nil {
		if err := c.job.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if c.target != nil {
		if err := c.target.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if c.CloudStorageClient != nil {
		if err := c.CloudStorageClient.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs.ErrorOrNil()
}
