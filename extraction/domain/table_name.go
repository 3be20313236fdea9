package domain

import (
	"regexp"
	"strings"
)

const (
	StorageTablesLabel = "__TABLES__"
	UnknownTableName   = "unknown_table_name"
)

var (
	storageTablesRegexp     = regexp.MustCompile(`(?i)\.\x60?__TABLES__\x60?(?:\W|$)`)
	informationSchemaRegexp = regexp.MustCompile(`(?i)INFORMATION_SCHEMA\x60?\.\x60?(\w+)`)
	fromClauseRegexp        = regexp.MustCompile(`(?i)\bFROM\s+([\x60\w\-.]+)`)
)

// ExtractTableName returns a best-effort label of what the query reads. It never fails,
// anything it cannot recognize is labeled UnknownTableName.
func ExtractTableName(sql string) (name string) {
	defer func() {
		if r := recover(); r != nil {
			name = UnknownTableName
		}
	}()

	if storageTablesRegexp.MatchString(sql) {
		return StorageTablesLabel
	}

	if m := informationSchemaRegexp.FindStringSubmatch(sql); m != nil {
		return strings.ToUpper(m[1])
	}

	if m := fromClauseRegexp.FindStringSubmatch(sql); m != nil {
		segments := strings.Split(strings.ReplaceAll(m[1], "`", ""), ".")
		for i := len(segments) - 1; i >= 0; i-- {
			if segments[i] != "" {
				return segments[i]
			}
		}
	}

	return UnknownTableName
}

// DatasetLabel is the label of a dataset scoped execution.
func DatasetLabel(base, dataset string) string {
	return base + "_" + dataset
}
