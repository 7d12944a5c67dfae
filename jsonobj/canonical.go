package jsonobj

import (
	"bytes"
	"hash/fnv"

	gojson "github.com/goccy/go-json"
)

// FullMarshaler is the full-serialization surface every message type exposes:
// a JSON-compatible mapping containing every declared field, suitable for
// lossless round-trip, hashing, and persistence.
type FullMarshaler interface {
	ToJSON() (map[string]any, error)
}

// PartialMarshaler is the outbound-request surface: a JSON-compatible mapping
// omitting fields left at their declared default.
type PartialMarshaler interface {
	ToPartialJSON() (map[string]any, error)
}

// Canonical renders a JSON-compatible value to deterministic JSON bytes.
// Object keys are emitted in sorted order, so structurally equal mappings
// produce identical bytes regardless of construction order.
func Canonical(v any) ([]byte, error) {
	b, err := gojson.Marshal(v)
	if err != nil {
		return nil, &EncodeError{Issues: Issues{{Path: "/", Code: CodeInvalidType, Message: "value is not JSON-compatible", Cause: err}}}
	}
	return b, nil
}

// Fingerprint hashes the canonical full serialization of an object. Equal
// objects (per Equal) produce equal fingerprints, so message values can key
// maps and sets despite holding ordered internal representations.
func Fingerprint(obj FullMarshaler) (uint64, error) {
	m, err := obj.ToJSON()
	if err != nil {
		return 0, err
	}
	b, err := Canonical(m)
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64(), nil
}

// Equal reports structural equality: two objects are equal iff their full
// serializations render to the same canonical bytes.
func Equal(a, b FullMarshaler) bool {
	am, err := a.ToJSON()
	if err != nil {
		return false
	}
	bm, err := b.ToJSON()
	if err != nil {
		return false
	}
	ab, err := Canonical(am)
	if err != nil {
		return false
	}
	bb, err := Canonical(bm)
	if err != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}
