package postgres

import (
	"net/url"
	"strings"
)

// DSN tags URL-style connection strings with application_name and, when
// asked, the lib/pq flag that avoids binary results on prepared statements.
// Key/value DSNs pass through unchanged.
func DSN(raw, appName string, disablePreparedBinary bool) string {
	raw = strings.TrimSpace(raw)
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if appName != "" && query.Get("application_name") == "" {
		query.Set("application_name", appName)
	}
	if disablePreparedBinary && query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// DatabaseName extracts the database from either DSN style.
func DatabaseName(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if parsed, err := url.Parse(dsn); err == nil && parsed.Scheme != "" {
		return strings.TrimPrefix(parsed.Path, "/")
	}
	for _, field := range strings.Fields(dsn) {
		if name, ok := strings.CutPrefix(field, "dbname="); ok {
			return strings.Trim(name, `"'`)
		}
	}
	return ""
}
