package espn

import (
	"strconv"
	"strings"
	"time"
)

func getMap(src map[string]any, key string) map[string]any {
	if src == nil {
		return nil
	}
	value, _ := src[key].(map[string]any)
	return value
}

func getSlice(src map[string]any, key string) []any {
	if src == nil {
		return nil
	}
	value, _ := src[key].([]any)
	return value
}

func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	switch typed := src[key].(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strconv.FormatInt(int64(typed), 10)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return ""
	}
}

func getInt(src map[string]any, key string) int {
	value, _ := getOptionalInt(src, key)
	return value
}

// getOptionalInt distinguishes a missing or unparseable value from zero.
func getOptionalInt(src map[string]any, key string) (int, bool) {
	if src == nil {
		return 0, false
	}
	switch typed := src[key].(type) {
	case float64:
		return int(typed), true
	case float32:
		return int(typed), true
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		return int(parsed), true
	default:
		return 0, false
	}
}

func getIntPtr(src map[string]any, key string) *int {
	value, ok := getOptionalInt(src, key)
	if !ok {
		return nil
	}
	return &value
}

func getBool(src map[string]any, key string) bool {
	if src == nil {
		return false
	}
	switch typed := src[key].(type) {
	case bool:
		return typed
	case string:
		parsed, _ := strconv.ParseBool(strings.TrimSpace(typed))
		return parsed
	default:
		return false
	}
}

func getTime(src map[string]any, key string) time.Time {
	raw := getString(src, key)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04Z07:00", "2006-01-02T15:04Z"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

func asMaps(items []any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}
