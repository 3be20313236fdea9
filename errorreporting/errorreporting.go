package errorreporting

import (
	"context"

	"cloud.google.com/go/errorreporting"
	"google.golang.org/api/option"

	"github.com/doitintl/hello/extraction-utility/common"
)

// Reporter sends fatal query failures to Cloud Error Reporting.
// A nil *Reporter drops every report.
type Reporter struct {
	erc *errorreporting.Client
}

func NewReporter(ctx context.Context, projectID string, opts ...option.ClientOption) (*Reporter, error) {
	erc, err := errorreporting.NewClient(ctx, projectID, errorreporting.Config{
		ServiceName:    common.AppName,
		ServiceVersion: common.GetEnv("APP_VERSION", "dev"),
	}, opts...)
	if err != nil {
		return nil, err
	}

	return &Reporter{erc: erc}, nil
}

func (r *Reporter) Report(err error, stack []byte) {
	if r == nil || err == nil {
		return
	}

	r.erc.Report(errorreporting.Entry{
		Error: err,
		Stack: stack,
	})
}

// Close flushes pending reports.
func (r *Reporter) Close() error {
	if r == nil {
		return nil
	}

	return r.erc.Close()
}
