package jsonobj

import (
	"bytes"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FromJSONBytes decodes a JSON document into the mapping form the message
// decoders consume. Numbers are preserved as json.Number so integer fields
// (combination indices) survive without float rounding.
func FromJSONBytes(data []byte) (map[string]any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &DecodeError{Issues: Issues{{Path: "/", Code: CodeParseError, Message: "malformed JSON", Cause: err}}}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, decodeIssue("/", CodeInvalidType, "expected object")
	}
	return m, nil
}

// FromYAMLBytes decodes a YAML document into the same mapping form as
// FromJSONBytes. YAML decodes maps as map[string]any with v3, but nested
// map[any]any still occurs for non-string keys; the normalization drops such
// keys rather than failing.
func FromYAMLBytes(data []byte) (map[string]any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, &DecodeError{Issues: Issues{{Path: "/", Code: CodeParseError, Message: "malformed YAML", Cause: err}}}
	}
	m := yamlAnyToStringMap(v)
	if m == nil {
		return nil, decodeIssue("/", CodeInvalidType, "expected mapping")
	}
	return m, nil
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-map roots
// return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
