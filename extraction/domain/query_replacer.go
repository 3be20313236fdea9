package domain

import "strings"

const regionQualifierPrefix = "region-"

// Replacements holds the placeholder values of one query instantiation. Empty values are not substituted.
type Replacements struct {
	ProjectID string
	Region    string
	Dataset   string
}

// QueryReplacer substitutes the known placeholders of a template. Unset placeholders and any
// other text, including unrelated braces, are left as they are.
func QueryReplacer(template string, replacements Replacements) string {
	var pairs []string

	if replacements.ProjectID != "" {
		pairs = append(pairs, ProjectIDPlaceholder, replacements.ProjectID)
	}

	if replacements.Region != "" {
		pairs = append(pairs, RegionPlaceholder, replacements.Region)
	}

	if replacements.Dataset != "" {
		pairs = append(pairs, DatasetPlaceholder, replacements.Dataset)
	}

	if len(pairs) == 0 {
		return template
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

// RegionQualifier returns the INFORMATION_SCHEMA region qualifier for a location, e.g. region-europe-west2.
func RegionQualifier(region string) string {
	r := strings.ToLower(strings.TrimSpace(region))
	if r == "" || strings.HasPrefix(r, regionQualifierPrefix) {
		return r
	}

	return regionQualifierPrefix + r
}
