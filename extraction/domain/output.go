package domain

// Dataset labels of outputs that are not bound to a single dataset.
const (
	ProjectWideDatasetLabel = "PROJECT_WIDE"
	AllDatasetsLabel        = "ALL_DATASETS"
)

type SaveRequest struct {
	OutputDir    string
	ProjectID    string
	Region       string
	DatasetLabel string
	TableLabel   string
}

type SavedFile struct {
	Path      string
	Rows      int
	SizeBytes int64
}
