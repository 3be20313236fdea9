package dal

import (
	"context"
	"errors"
	"net/http"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"

	"github.com/doitintl/hello/extraction-utility/common"
	"github.com/doitintl/hello/extraction-utility/extraction/dal/iface"
	"github.com/doitintl/hello/extraction-utility/extraction/domain"
	"github.com/doitintl/hello/extraction-utility/logger"
)

const extractionJobPrefix = "extraction_utility"

// BigqueryContext runs queries billed to a single project at a fixed job location.
type BigqueryContext struct {
	loggerProvider logger.Provider
	queryHandler   iface.QueryHandler
	client         *bigquery.Client
	name           string
	location       string

	datasetIterator func(ctx context.Context, projectID string) iface.DatasetIterator
}

func NewBigqueryContext(
	loggerProvider logger.Provider,
	queryHandler iface.QueryHandler,
	client *bigquery.Client,
	name string,
	location string,
) *BigqueryContext {
	c := &BigqueryContext{
		loggerProvider: loggerProvider,
		queryHandler:   queryHandler,
		client:         client,
		name:           name,
		location:       location,
	}
	c.datasetIterator = c.listDatasets

	return c
}

func (c *BigqueryContext) listDatasets(ctx context.Context, projectID string) iface.DatasetIterator {
	it := c.client.Datasets(ctx)
	it.ProjectID = projectID

	return it
}

func (c *BigqueryContext) Name() string {
	return c.name
}

func (c *BigqueryContext) ProjectID() string {
	return c.client.Project()
}

func (c *BigqueryContext) Location() string {
	return c.location
}

// RunQuery runs the query with the cache disabled and drains every row.
func (c *BigqueryContext) RunQuery(ctx context.Context, query string) (*domain.QueryResult, error) {
	queryJob := c.client.Query(query)
	queryJob.DisableQueryCache = true
	queryJob.JobIDConfig = bigquery.JobIDConfig{
		JobID:          extractionJobPrefix,
		AddJobIDSuffix: true,
		Location:       c.location,
	}
	queryJob.Labels = map[string]string{
		common.LabelKeyEnv.String():     common.GetEnvironmentLabel(),
		common.LabelKeyFeature.String(): common.FeatureExtraction,
		common.LabelKeyModule.String():  common.ModuleExtractor,
	}

	iter, stats, err := c.queryHandler.Read(ctx, queryJob)
	if err != nil {
		return nil, err
	}

	result := &domain.QueryResult{
		Statistics: StatisticsFromJob(stats),
	}

	for {
		var row []bigquery.Value

		err := iter.Next(&row)
		if err != nil {
			if errors.Is(err, iterator.Done) {
				break
			}

			return nil, err
		}

		result.Rows = append(result.Rows, row)
	}

	result.Schema = iter.Schema()

	return result, nil
}

// ListDatasets returns the dataset ids of the project in listing order.
func (c *BigqueryContext) ListDatasets(ctx context.Context, projectID string) ([]string, error) {
	l := c.loggerProvider(ctx)

	datasetsIter := c.datasetIterator(ctx, projectID)

	var datasets []string

	for {
		dataset, err := datasetsIter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			if stop := handleListingError(l, projectID, err); stop {
				break
			}

			return nil, err
		}

		datasets = append(datasets, dataset.DatasetID)
	}

	return datasets, nil
}

// handleListingError reports whether listing should end quietly. BQ not being
// enabled, the project having no datasets or lacking access all end the listing.
func handleListingError(l logger.ILogger, projectID string, err error) bool {
	var gapiErr *googleapi.Error
	if !errors.As(err, &gapiErr) {
		return false
	}

	switch gapiErr.Code {
	case http.StatusNotFound, http.StatusBadRequest:
		return true
	case http.StatusForbidden:
		l.Warningf("cannot list datasets for project %s; %v", projectID, err)
		return true
	default:
		return false
	}
}

// StatisticsFromJob converts job statistics into query statistics, leaving
// every value the job did not report as null.
func StatisticsFromJob(js *bigquery.JobStatistics) domain.QueryStatistics {
	var stats domain.QueryStatistics

	if js == nil {
		return stats
	}

	stats.TotalBytesProcessed = bigquery.NullInt64{Int64: js.TotalBytesProcessed, Valid: true}

	qs, ok := js.Details.(*bigquery.QueryStatistics)
	if !ok || qs == nil {
		return stats
	}

	stats.TotalBytesBilled = bigquery.NullInt64{Int64: qs.TotalBytesBilled, Valid: true}
	stats.SlotMillis = bigquery.NullInt64{Int64: qs.SlotMillis, Valid: true}
	stats.CacheHit = bigquery.NullBool{Bool: qs.CacheHit, Valid: true}

	if js.TotalBytesProcessed == 0 && qs.TotalBytesProcessed != 0 {
		stats.TotalBytesProcessed.Int64 = qs.TotalBytesProcessed
	}

	return stats
}
