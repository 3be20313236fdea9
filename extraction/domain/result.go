package domain

import "cloud.google.com/go/bigquery"

// QueryResult holds the rows of a finished query in schema order.
type QueryResult struct {
	Schema     bigquery.Schema
	Rows       [][]bigquery.Value
	Statistics QueryStatistics
}

func (r *QueryResult) Empty() bool {
	return r == nil || len(r.Rows) == 0
}

// Append concatenates the rows of another result. The first non-empty schema wins.
func (r *QueryResult) Append(other *QueryResult) {
	if other == nil {
		return
	}

	if len(r.Schema) == 0 {
		r.Schema = other.Schema
	}

	r.Rows = append(r.Rows, other.Rows...)
}
