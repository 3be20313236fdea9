package common

type LabelKey string

func (l LabelKey) String() string {
	return string(l)
}

const (
	LabelKeyEnv     LabelKey = "env"
	LabelKeyFeature LabelKey = "feature"
	LabelKeyModule  LabelKey = "module"
	LabelKeyQueryID LabelKey = "query_id"
)

type Environment string

const (
	EnvProd Environment = "production"
	EnvDev  Environment = "development"
)

func GetEnvironmentLabel() string {
	if Production {
		return string(EnvProd)
	}

	return string(EnvDev)
}

const (
	FeatureExtraction = "information-schema-extraction"
	ModuleExtractor   = "extractor"
)
