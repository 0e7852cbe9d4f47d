// Package dburl holds the postgres connection string handling shared by the
// API and the migration binary.
package dburl

import (
	"net/url"
	"strings"
)

const (
	binaryResultParam = "disable_prepared_binary_result"
	maxTracedQueryLen = 512
)

// Normalize asks the driver to skip binary results for prepared statements,
// which transaction-mode poolers cannot carry across connections. Keyword
// DSNs and URLs that already set the parameter are returned as-is.
func Normalize(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}
	query := parsed.Query()
	if query.Get(binaryResultParam) != "" {
		return raw
	}
	query.Set(binaryResultParam, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// Name extracts the database name from either a URL or a keyword DSN.
func Name(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if value, ok := strings.CutPrefix(token, "dbname="); ok {
			if name := strings.Trim(value, `"' `); name != "" {
				return name
			}
		}
	}
	return ""
}

// FormatQuery collapses whitespace so multi-line statements read as one span
// attribute, and truncates long ones.
func FormatQuery(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLen {
		return normalized
	}
	return normalized[:maxTracedQueryLen] + "..."
}
