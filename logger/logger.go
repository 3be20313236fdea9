package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"cloud.google.com/go/logging"
	"google.golang.org/api/option"
	"google.golang.org/genproto/googleapis/api/monitoredres"

	"github.com/doitintl/hello/extraction-utility/common"
)

type ctxKey string

const (
	// CtxLoggerKey is how loggers are stored/retrieved from a context.
	CtxLoggerKey ctxKey = "app-logger"

	// logID is the name of the cloud log the run writes to.
	logID = "extraction_utility"

	// labels keys for monitored resource definition
	projectIDField = "project_id"

	globalResourceType = "global"

	gcpLogging = "GCP_LOGGING"
)

type Provider func(ctx context.Context) ILogger

type Options struct {
	// ProjectID is the project cloud log entries are written to.
	ProjectID string
	// CloudLogging enables the cloud logging sink. GCP_LOGGING overrides it.
	CloudLogging bool
	// Verbose lowers the stdout severity threshold to debug.
	Verbose bool
	// Output defaults to stderr.
	Output        io.Writer
	ClientOptions []option.ClientOption
}

// Logging holds the sinks shared by every logger of a run.
type Logging struct {
	client    *logging.Client
	cloud     *logging.Logger
	resource  *monitoredres.MonitoredResource
	threshold logging.Severity
	std       *log.Logger
}

// NewLogging initializes the stdout sink and, when enabled, the google cloud logging client.
func NewLogging(ctx context.Context, opts Options) (*Logging, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	l := &Logging{
		threshold: logging.Info,
		std:       log.New(out, "", log.LstdFlags|log.Lmicroseconds),
	}

	if opts.Verbose {
		l.threshold = logging.Debug
	}

	cloudLogging, err := strconv.ParseBool(common.GetEnv(gcpLogging, strconv.FormatBool(opts.CloudLogging)))
	if err != nil {
		return nil, err
	}

	if !cloudLogging {
		return l, nil
	}

	if opts.ProjectID == "" {
		return nil, fmt.Errorf("cloud logging requires a project id")
	}

	client, err := logging.NewClient(ctx, opts.ProjectID, opts.ClientOptions...)
	if err != nil {
		return nil, err
	}

	l.client = client
	l.cloud = client.Logger(logID)
	l.resource = &monitoredres.MonitoredResource{
		Type: globalResourceType,
		Labels: map[string]string{
			projectIDField: opts.ProjectID,
		},
	}

	return l, nil
}

// Close flushes buffered cloud log entries.
func (l *Logging) Close() error {
	if l.client == nil {
		return nil
	}

	return l.client.Close()
}

// Logger returns the logger that was stored inside the context, or a new one bound to these sinks.
func (l *Logging) Logger(ctx context.Context) ILogger {
	if lg, ok := ctx.Value(CtxLoggerKey).(*Logger); ok {
		return lg
	}

	return l.NewLogger()
}

// NewContext stores the logger in the context so that every Provider call of a run shares its trace and labels.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, CtxLoggerKey, l)
}
