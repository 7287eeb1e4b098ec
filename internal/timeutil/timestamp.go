// Package timeutil provides a single flexible-timestamp parser for the
// heterogeneous date encodings found in the hosted document store: RFC 3339
// strings, Firestore timestamps, `{seconds: N}` maps written by older
// pipelines, and raw epoch numbers.
package timeutil

import "time"

// stringLayouts are tried in order when parsing a string timestamp.
var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// Parse resolves an arbitrary stored timestamp value into a time.Time.
// It returns ok=false when the value cannot be interpreted as a point in
// time; callers are expected to skip such values rather than fail.
func Parse(v interface{}) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, !x.IsZero()
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, !x.IsZero()
	case string:
		return ParseString(x)
	case map[string]interface{}:
		// Serialized Firestore timestamp: {seconds: N, nanoseconds: M}.
		if secs, ok := epochSeconds(x["seconds"]); ok {
			return time.Unix(secs, 0), true
		}
		return time.Time{}, false
	case int64:
		return time.Unix(x, 0), true
	case int:
		return time.Unix(int64(x), 0), true
	case float64:
		return time.Unix(int64(x), 0), true
	}
	return time.Time{}, false
}

// ParseString parses a string timestamp against the known layouts.
func ParseString(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func epochSeconds(v interface{}) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case float64:
		return int64(x), true
	}
	return 0, false
}
