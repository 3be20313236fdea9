package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-ini/ini"
	"github.com/go-playground/validator/v10"
	"github.com/sosodev/duration"

	"github.com/doitintl/hello/extraction-utility/common"
	"github.com/doitintl/hello/extraction-utility/extraction/domain"
)

const (
	Section = "extraction_utility"

	EnvConfigPath     = "CONFIG_PATH"
	DefaultConfigPath = "./extraction_utility/config/config.ini"

	DefaultTempLocation = "US"
	DefaultPricePerTiB  = domain.PricePerTBScan
)

// requiredOptions must be present in the section, even when empty.
var requiredOptions = []string{
	"job_project_id",
	"job_region",
	"target_project_id",
	"target_region",
	"target_dataset_id",
	"output_directory",
	"service_account_file",
}

type Config struct {
	// Job execution settings (where the job runs from)
	JobProjectID string `ini:"job_project_id" validate:"required"`
	// JobRegion is the job location. Empty falls back to TempLocation.
	JobRegion string `ini:"job_region"`

	// Target data settings (where the data resides)
	TargetProjectID string `ini:"target_project_id" validate:"required"`
	TargetRegion    string `ini:"target_region" validate:"required"`
	// TargetDatasetID is a comma separated list, empty means every dataset of the target project.
	TargetDatasetID string `ini:"target_dataset_id"`

	OutputDirectory string `ini:"output_directory" validate:"required"`
	// ServiceAccountFile is a key file path or a secret manager version resource name.
	// Empty uses application default credentials.
	ServiceAccountFile string `ini:"service_account_file"`
	// TempLocation is the multi-region location used when the job region is not usable.
	TempLocation string `ini:"temp_location" validate:"required"`

	PricePerTiB float64 `ini:"price_per_tib" validate:"gt=0"`
	CatalogFile string  `ini:"catalog_file"`
	// RawQueryTimeout accepts a Go duration (90s) or an ISO 8601 duration (PT90S).
	RawQueryTimeout string        `ini:"query_timeout"`
	QueryTimeout    time.Duration `ini:"-" validate:"gte=0"`
	CloudLogging    bool          `ini:"cloud_logging"`
	ErrorReporting  bool          `ini:"error_reporting"`
}

// DatasetIDs returns the explicitly configured datasets. An empty result means discovery.
func (c *Config) DatasetIDs() []string {
	return common.SplitAndTrim(c.TargetDatasetID)
}

// JobLocation is where query jobs billed to the job project run.
func (c *Config) JobLocation() string {
	if c.JobRegion != "" {
		return c.JobRegion
	}

	return c.TempLocation
}

// ResolvePath picks the config file: the explicit path, then CONFIG_PATH, then the default location.
// A configured path that does not exist falls back to the default location.
func ResolvePath(explicit string) (string, error) {
	defaultPath, err := filepath.Abs(DefaultConfigPath)
	if err != nil {
		return "", err
	}

	path := explicit
	if path == "" {
		path = common.GetEnv(EnvConfigPath, "")
	}

	if path == "" || !exists(path) {
		path = defaultPath
	}

	if !exists(path) {
		return "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	return path, nil
}

// Load reads and validates the extraction_utility section of an INI file.
func Load(path string) (*Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	sec, err := f.GetSection(Section)
	if err != nil {
		return nil, fmt.Errorf("%w: section [%s]", ErrMissingOption, Section)
	}

	for _, key := range requiredOptions {
		if !sec.HasKey(key) {
			return nil, fmt.Errorf("%w: '%s' in section [%s]", ErrMissingOption, key, Section)
		}
	}

	cfg := &Config{
		TempLocation: DefaultTempLocation,
		PricePerTiB:  DefaultPricePerTiB,
	}

	if err := sec.MapTo(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	if cfg.QueryTimeout, err = parseTimeout(cfg.RawQueryTimeout); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	return cfg, nil
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	d, err := duration.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w: query_timeout '%s'", ErrInvalidConfig, s)
	}

	return d.ToTimeDuration(), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
