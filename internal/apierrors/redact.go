package apierrors

import "strings"

// redactedValue replaces sensitive values in logging output.
const redactedValue = "[redacted]"

// Redact returns a deep copy of fields with sensitive values replaced.
// Nested maps and slices are copied and redacted recursively; the input is
// never modified.
func Redact(fields map[string]interface{}) map[string]interface{} {
	if fields == nil {
		return nil
	}
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if isSensitiveKey(k) {
			out[k] = redactedValue
			continue
		}
		out[k] = redactValue(v)
	}
	return out
}

func redactValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return Redact(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = redactValue(item)
		}
		return out
	default:
		return v
	}
}

// isSensitiveKey reports whether a field name refers to credentials, tokens
// or card data. Names are compared after lowercasing and stripping
// separators, so apiKey, api_key and api-key all match.
func isSensitiveKey(key string) bool {
	norm := strings.ToLower(key)
	norm = strings.ReplaceAll(norm, "_", "")
	norm = strings.ReplaceAll(norm, "-", "")

	switch norm {
	case "authorization", "cvc", "cvv", "pin":
		return true
	}

	for _, marker := range []string{"apikey", "secret", "password", "token", "cardnumber"} {
		if strings.Contains(norm, marker) {
			return true
		}
	}
	return false
}
