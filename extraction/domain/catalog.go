package domain

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scope tells the fan-out controller how many times a template runs and how its results are persisted.
type Scope string

const (
	// ScopeProjectWide templates run once per project.
	ScopeProjectWide Scope = "project_wide"
	// ScopeDatasetScoped templates run once per dataset, each result persisted on its own.
	ScopeDatasetScoped Scope = "dataset_scoped"
	// ScopeDatasetScopedMerge templates run once per dataset and the results are persisted as one output.
	ScopeDatasetScopedMerge Scope = "dataset_scoped_merge"
)

func (s Scope) String() string {
	return string(s)
}

func (s Scope) Validate() error {
	switch s {
	case ScopeProjectWide, ScopeDatasetScoped, ScopeDatasetScopedMerge:
		return nil
	default:
		return fmt.Errorf("%w '%s'", ErrInvalidScope, s)
	}
}

// PerDataset reports whether the scope fans out over the dataset list.
func (s Scope) PerDataset() bool {
	return s == ScopeDatasetScoped || s == ScopeDatasetScopedMerge
}

type QueryTemplate struct {
	ID       QueryID `yaml:"id"`
	Scope    Scope   `yaml:"scope"`
	Template string  `yaml:"template"`
}

// Catalog is the ordered list of templates of a run.
type Catalog []QueryTemplate

type catalogFile struct {
	Queries Catalog `yaml:"queries"`
}

// LoadCatalog reads a YAML catalog file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, err)
	}

	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog document.
func ParseCatalog(data []byte) (Catalog, error) {
	var f catalogFile

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, err)
	}

	if err := f.Queries.Validate(); err != nil {
		return nil, err
	}

	return f.Queries, nil
}

// Validate checks ids are unique and that every scope agrees with the dataset placeholder.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: no queries", ErrInvalidCatalog)
	}

	seen := make(map[QueryID]struct{}, len(c))

	for i, q := range c {
		if q.ID == "" {
			return fmt.Errorf("%w: query #%d has no id", ErrInvalidCatalog, i+1)
		}

		if _, ok := seen[q.ID]; ok {
			return fmt.Errorf("%w: duplicate query id '%s'", ErrInvalidCatalog, q.ID)
		}

		seen[q.ID] = struct{}{}

		if strings.TrimSpace(q.Template) == "" {
			return fmt.Errorf("%w: query '%s' has an empty template", ErrInvalidCatalog, q.ID)
		}

		if err := q.Scope.Validate(); err != nil {
			return fmt.Errorf("%w: query '%s': %s", ErrInvalidCatalog, q.ID, err)
		}

		hasDataset := strings.Contains(q.Template, DatasetPlaceholder)
		if q.Scope.PerDataset() != hasDataset {
			return fmt.Errorf("%w: query '%s' with scope '%s' must%s reference %s",
				ErrInvalidCatalog, q.ID, q.Scope, negate(!q.Scope.PerDataset()), DatasetPlaceholder)
		}
	}

	return nil
}

func negate(b bool) string {
	if b {
		return " not"
	}

	return ""
}
