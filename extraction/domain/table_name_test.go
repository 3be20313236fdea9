package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTableName(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "information schema view",
			sql:  "SELECT * FROM `p`.r.INFORMATION_SCHEMA.TABLES",
			want: "TABLES",
		},
		{
			name: "information schema view is upper cased",
			sql:  "select * from `p`.`region-eu`.information_schema.jobs_by_project as a",
			want: "JOBS_BY_PROJECT",
		},
		{
			name: "storage tables meta table",
			sql:  "SELECT project_id FROM `p`.ds.__TABLES__",
			want: StorageTablesLabel,
		},
		{
			name: "storage tables wins over information schema",
			sql:  "SELECT * FROM `p`.ds.__TABLES__ JOIN `p`.`region-eu`.INFORMATION_SCHEMA.TABLES USING (table_id)",
			want: StorageTablesLabel,
		},
		{
			name: "template placeholders",
			sql:  "SELECT * FROM `{project_id}`.`{region}`.INFORMATION_SCHEMA.COLUMNS WHERE TABLE_SCHEMA = '{dataset}'",
			want: "COLUMNS",
		},
		{
			name: "from clause fallback",
			sql:  "SELECT a FROM `my-project.analytics.events` WHERE x = 1",
			want: "events",
		},
		{
			name: "from clause without qualification",
			sql:  "select 1 from dual",
			want: "dual",
		},
		{
			name: "similar meta table name is not storage tables",
			sql:  "SELECT * FROM ds.__TABLES__SUMMARY__",
			want: "__TABLES__SUMMARY__",
		},
		{
			name: "no table",
			sql:  "SELECT 1",
			want: UnknownTableName,
		},
		{
			name: "empty",
			sql:  "",
			want: UnknownTableName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTableName(tt.sql)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, ExtractTableName(tt.sql))
		})
	}
}

func TestExtractTableNameDefaultCatalog(t *testing.T) {
	want := map[QueryID]string{
		Schemata:      "SCHEMATA",
		JobsByProject: "JOBS_BY_PROJECT",
		Routines:      "ROUTINES",
		Columns:       "COLUMNS",
		Views:         "VIEWS",
		StorageTables: StorageTablesLabel,
		Tables:        "TABLES",
	}

	for _, q := range DefaultCatalog() {
		formatted := QueryReplacer(q.Template, Replacements{ProjectID: "p", Region: "region-eu", Dataset: "ds"})
		assert.Equal(t, want[q.ID], ExtractTableName(formatted), q.ID)
	}
}

func TestDatasetLabel(t *testing.T) {
	assert.Equal(t, "COLUMNS_ds1", DatasetLabel("COLUMNS", "ds1"))
}
