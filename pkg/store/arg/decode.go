package arg

import (
	"fmt"
	"strings"
	"time"
)

// objectRows unwraps the objectArray payload of a query response. Anything
// that is not a JSON object is skipped.
func objectRows(data any) []map[string]any {
	items, ok := data.([]any)
	if !ok {
		return nil
	}
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if row, ok := item.(map[string]any); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// field resolves a column by name, falling back to a case-insensitive scan.
// Catalog queries are authored by hand and do not always agree on casing.
func field(row map[string]any, key string) (any, bool) {
	if v, ok := row[key]; ok {
		return v, true
	}
	for k, v := range row {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func stringField(row map[string]any, key string) string {
	v, ok := field(row, key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func boolField(row map[string]any, key string) bool {
	v, ok := field(row, key)
	if !ok || v == nil {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true")
	default:
		return false
	}
}

func timeField(row map[string]any, key string) time.Time {
	s := stringField(row, key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func stringSliceField(row map[string]any, key string) []string {
	v, ok := field(row, key)
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	values := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}

func tagsField(row map[string]any, key string) map[string]string {
	v, ok := field(row, key)
	if !ok || v == nil {
		return nil
	}
	raw, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	tags := make(map[string]string, len(raw))
	for k, val := range raw {
		if s, ok := val.(string); ok {
			tags[k] = s
		}
	}
	return tags
}
