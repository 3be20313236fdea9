package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryReplacer(t *testing.T) {
	tests := []struct {
		name         string
		template     string
		replacements Replacements
		want         string
	}{
		{
			name:         "all placeholders",
			template:     "SELECT * FROM `{project_id}`.`{region}`.INFORMATION_SCHEMA.VIEWS WHERE TABLE_SCHEMA = '{dataset}'",
			replacements: Replacements{ProjectID: "target", Region: "region-europe-west2", Dataset: "sales"},
			want:         "SELECT * FROM `target`.`region-europe-west2`.INFORMATION_SCHEMA.VIEWS WHERE TABLE_SCHEMA = 'sales'",
		},
		{
			name:         "unset placeholders are left untouched",
			template:     "SELECT * FROM `{project_id}`.{dataset}.__TABLES__",
			replacements: Replacements{ProjectID: "target"},
			want:         "SELECT * FROM `target`.{dataset}.__TABLES__",
		},
		{
			name:         "repeated placeholders",
			template:     "{project_id}/{project_id}",
			replacements: Replacements{ProjectID: "p"},
			want:         "p/p",
		},
		{
			name:         "unknown braces survive",
			template:     `SELECT JSON_VALUE(x, '$.{a}'), '{projectId}', '{region' FROM {project_id}.t`,
			replacements: Replacements{ProjectID: "p", Region: "r", Dataset: "d"},
			want:         `SELECT JSON_VALUE(x, '$.{a}'), '{projectId}', '{region' FROM p.t`,
		},
		{
			name:         "nothing to replace",
			template:     "SELECT {project_id}",
			replacements: Replacements{},
			want:         "SELECT {project_id}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QueryReplacer(tt.template, tt.replacements))
		})
	}
}

func TestQueryReplacerIgnoresDatasetWithoutPlaceholder(t *testing.T) {
	for _, q := range DefaultCatalog() {
		if q.Scope.PerDataset() {
			continue
		}

		base := QueryReplacer(q.Template, Replacements{ProjectID: "p", Region: "region-us"})

		for _, dataset := range []string{"ds1", "other_dataset", "x"} {
			got := QueryReplacer(q.Template, Replacements{ProjectID: "p", Region: "region-us", Dataset: dataset})
			assert.Equal(t, base, got, q.ID)
		}
	}
}

func TestRegionQualifier(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{region: "europe-west2", want: "region-europe-west2"},
		{region: "US", want: "region-us"},
		{region: "region-asia-east2", want: "region-asia-east2"},
		{region: " EU ", want: "region-eu"},
		{region: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			assert.Equal(t, tt.want, RegionQualifier(tt.region))
		})
	}
}
