package jsonobj

import (
	"fmt"
	"reflect"
	"sort"
)

// UnknownPolicy controls how unknown keys are handled during Decode.
type UnknownPolicy int

const (
	UnknownIgnore UnknownPolicy = iota // Drop unknown keys (forward compatibility).
	UnknownStrict                      // Reject unknown keys with an error.
)

// DecodeOpt bundles per-call decode options.
type DecodeOpt struct {
	Unknown UnknownPolicy
}

// Field describes one wire field of an Object: its key, presence rules, the
// domain-side default assumed when the key is absent, and optional encode and
// decode hooks. A field without hooks passes values through unchanged.
type Field struct {
	Key       string
	Required  bool
	Default   any  // Domain value assumed when the key is absent.
	OmitEmpty bool // Omit from partial output when the value equals Default.
	Decode    func(v any) (any, error)
	Encode    func(v any) (any, error)
}

// Object is an immutable field table describing the wire shape of one message
// type. Tables are built once at package init and never mutated afterwards,
// so Decode/Encode are safe from any number of concurrent call sites.
type Object struct {
	fields []Field
	byKey  map[string]int
}

// NewObject builds a field table. Duplicate keys are a programming error and
// panic at init time.
func NewObject(fields ...Field) *Object {
	byKey := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, dup := byKey[f.Key]; dup {
			panic(fmt.Sprintf("jsonobj: duplicate field key %q", f.Key))
		}
		byKey[f.Key] = i
	}
	return &Object{fields: fields, byKey: byKey}
}

// Keys returns the declared field keys in declaration order.
func (o *Object) Keys() []string {
	ks := make([]string, 0, len(o.fields))
	for _, f := range o.fields {
		ks = append(ks, f.Key)
	}
	return ks
}

// Decode validates the mapping against the field table and returns the domain
// values keyed by field key: present fields run through their decoder (child
// issues rebased under /<key>), absent fields take their default, and absent
// required fields fail. All issues are collected before returning so a caller
// sees every offending field at once.
func (o *Object) Decode(m map[string]any, opts ...DecodeOpt) (map[string]any, error) {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	out := make(map[string]any, len(o.fields))
	var iss Issues
	for _, f := range o.fields {
		val, exists := m[f.Key]
		// Nil is treated as absence: full serializations emit every key,
		// rendering unset optional fields as JSON null — or, for mappings
		// assembled in memory, as their typed-nil defaults. Both must decode
		// back to the default rather than reaching the field decoder.
		if !exists || isNilValue(val) {
			if f.Required {
				iss = AppendIssues(iss, Issue{Path: "/" + f.Key, Code: CodeRequired, Message: "required property missing"})
				continue
			}
			out[f.Key] = f.Default
			continue
		}
		if f.Decode == nil {
			out[f.Key] = val
			continue
		}
		dv, err := f.Decode(val)
		if err != nil {
			iss = AppendIssues(iss, fieldIssues(f.Key, err)...)
			continue
		}
		out[f.Key] = dv
	}
	if opt.Unknown == UnknownStrict {
		// unknown keys in key-sorted order for deterministic issue ordering
		uks := make([]string, 0, len(m))
		for k := range m {
			if _, known := o.byKey[k]; !known {
				uks = append(uks, k)
			}
		}
		sort.Strings(uks)
		for _, k := range uks {
			iss = AppendIssues(iss, Issue{Path: "/" + k, Code: CodeUnknownKey, Message: "unknown key"})
		}
	}
	if len(iss) > 0 {
		return nil, &DecodeError{Issues: iss}
	}
	return out, nil
}

// Encode produces the full serialization: every declared key is present, with
// encoders applied. Values absent from the input take the field default; a
// required field resolving to nil fails.
func (o *Object) Encode(values map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(o.fields))
	var iss Issues
	for _, f := range o.fields {
		v, ok := values[f.Key]
		if !ok {
			v = f.Default
		}
		if f.Required && isNilValue(v) {
			iss = AppendIssues(iss, Issue{Path: "/" + f.Key, Code: CodeRequired, Message: "required field is unset"})
			continue
		}
		ev, err := o.encodeField(f, v)
		if err != nil {
			iss = AppendIssues(iss, fieldIssues(f.Key, err)...)
			continue
		}
		out[f.Key] = ev
	}
	if len(iss) > 0 {
		return nil, &EncodeError{Issues: iss}
	}
	return out, nil
}

// EncodePartial produces the partial serialization: fields whose value equals
// their declared default are omitted when marked OmitEmpty.
func (o *Object) EncodePartial(values map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(o.fields))
	var iss Issues
	for _, f := range o.fields {
		v, ok := values[f.Key]
		if !ok {
			v = f.Default
		}
		if f.OmitEmpty && reflect.DeepEqual(v, f.Default) {
			continue
		}
		if f.Required && isNilValue(v) {
			iss = AppendIssues(iss, Issue{Path: "/" + f.Key, Code: CodeRequired, Message: "required field is unset"})
			continue
		}
		ev, err := o.encodeField(f, v)
		if err != nil {
			iss = AppendIssues(iss, fieldIssues(f.Key, err)...)
			continue
		}
		out[f.Key] = ev
	}
	if len(iss) > 0 {
		return nil, &EncodeError{Issues: iss}
	}
	return out, nil
}

func (o *Object) encodeField(f Field, v any) (any, error) {
	if f.Encode == nil {
		return v, nil
	}
	return f.Encode(v)
}

// isNilValue reports whether v is nil or a nil pointer/slice/map/interface.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
