package models

// Helpers for reading loosely-typed Firestore document maps. Every accessor
// returns a type-appropriate zero value when the field is absent or has an
// unexpected shape, so normalized models never carry nil or undefined fields.

func docString(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func docBool(data map[string]interface{}, key string) bool {
	if v, ok := data[key].(bool); ok {
		return v
	}
	return false
}

// docNumber coerces the numeric representations Firestore may hand back
// (int64 for integer fields, float64 for doubles) into a float64.
func docNumber(data map[string]interface{}, key string) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	}
	return 0
}

func docInt(data map[string]interface{}, key string) int {
	return int(docNumber(data, key))
}

func docStringSlice(data map[string]interface{}, key string) []string {
	out := []string{}
	raw, ok := data[key].([]interface{})
	if !ok {
		return out
	}
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func docMap(data map[string]interface{}, key string) map[string]interface{} {
	if v, ok := data[key].(map[string]interface{}); ok {
		return v
	}
	return map[string]interface{}{}
}

func docMapSlice(data map[string]interface{}, key string) []map[string]interface{} {
	out := []map[string]interface{}{}
	raw, ok := data[key].([]interface{})
	if !ok {
		return out
	}
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
