package jsonobj

import (
	"encoding/json"
	"math"
	"strconv"
)

// Scalar coercion helpers shared by message decoders. Each returns a
// DecodeError with CodeInvalidType at the root path; Object.Decode rebases
// the path under the offending field key.

// AsString coerces a decoded JSON value to string.
func AsString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", decodeIssue("/", CodeInvalidType, "expected string")
	}
	return s, nil
}

// AsInt coerces a decoded JSON number to a non-fractional int. json.Number is
// the usual representation (FromJSONBytes decodes with UseNumber); float64
// and int are accepted for mappings assembled in memory.
func AsInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case json.Number:
		i, err := strconv.ParseInt(string(n), 10, 64)
		if err != nil {
			return 0, decodeIssue("/", CodeInvalidType, "expected integer")
		}
		return int(i), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, decodeIssue("/", CodeInvalidType, "expected integer")
		}
		return int(n), nil
	default:
		return 0, decodeIssue("/", CodeInvalidType, "expected integer")
	}
}

// AsObject coerces a decoded JSON value to an object mapping.
func AsObject(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, decodeIssue("/", CodeInvalidType, "expected object")
	}
	return m, nil
}

// AsSlice coerces a decoded JSON value to an array.
func AsSlice(v any) ([]any, error) {
	s, ok := v.([]any)
	if !ok {
		return nil, decodeIssue("/", CodeInvalidType, "expected array")
	}
	return s, nil
}

// AsStringSlice coerces a decoded JSON array to []string, pointing issues at
// the offending element index. Mappings assembled in memory may already hold
// []string values; those pass through.
func AsStringSlice(v any) ([]string, error) {
	if s, ok := v.([]string); ok {
		return s, nil
	}
	raw, err := AsSlice(v)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for i, e := range raw {
		s, ok := e.(string)
		if !ok {
			return nil, decodeIssue("/"+strconv.Itoa(i), CodeInvalidType, "expected string")
		}
		out = append(out, s)
	}
	return out, nil
}

// DecodeString is AsString shaped as a Field decode hook.
func DecodeString(v any) (any, error) { return AsString(v) }

// DecodeStringSlice is AsStringSlice shaped as a Field decode hook.
func DecodeStringSlice(v any) (any, error) { return AsStringSlice(v) }
