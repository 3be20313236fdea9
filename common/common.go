package common

import (
	"os"
	"strings"
)

// Bytes!
const (
	KibiByte int64 = 1024
	MebiByte int64 = 1024 * KibiByte
	GibiByte int64 = 1024 * MebiByte
	TebiByte int64 = 1024 * GibiByte
)

const (
	// AppName is used for job id prefixes, log names and the profiler service name.
	AppName = "extraction-utility"

	envProduction = "PRODUCTION"
)

// Production is true when the utility runs as a scheduled production job.
var Production = strings.EqualFold(GetEnv(envProduction, "false"), "true")

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// SplitAndTrim splits a comma separated list, trims every element and drops empty ones.
func SplitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}

	return res
}
