package jsonobj_test

import (
	"errors"
	"testing"

	"github.com/ajhaydock/letsencrypt/jsonobj"
)

func testTable() *jsonobj.Object {
	return jsonobj.NewObject(
		jsonobj.Field{Key: "name", Required: true, Decode: jsonobj.DecodeString},
		jsonobj.Field{Key: "note", Default: "", OmitEmpty: true, Decode: jsonobj.DecodeString},
		jsonobj.Field{Key: "tags", Default: []string(nil), OmitEmpty: true, Decode: jsonobj.DecodeStringSlice},
	)
}

func TestObjectDecode_RequiredMissing(t *testing.T) {
	_, err := testTable().Decode(map[string]any{"note": "x"})
	var derr *jsonobj.DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if len(derr.Issues) != 1 || derr.Issues[0].Code != jsonobj.CodeRequired || derr.Issues[0].Path != "/name" {
		t.Fatalf("unexpected issues: %+v", derr.Issues)
	}
}

func TestObjectDecode_AppliesDefaults(t *testing.T) {
	vals, err := testTable().Decode(map[string]any{"name": "a"})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if vals["note"] != "" {
		t.Fatalf("expected default note, got %v", vals["note"])
	}
}

func TestObjectDecode_NullMeansAbsent(t *testing.T) {
	vals, err := testTable().Decode(map[string]any{"name": "a", "note": nil})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if vals["note"] != "" {
		t.Fatalf("expected default note for null, got %v", vals["note"])
	}
	if _, err := testTable().Decode(map[string]any{"name": nil}); err == nil {
		t.Fatalf("expected required failure for null required field")
	}
}

func TestObjectDecode_FullEncodeOutputDecodesBack(t *testing.T) {
	// Full encode backfills absent optional fields with their typed-nil
	// defaults; decode must treat those as absence, not hand them to the
	// field decoder.
	full, err := testTable().Encode(map[string]any{"name": "a"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	vals, err := testTable().Decode(full)
	if err != nil {
		t.Fatalf("decode of full output: %v", err)
	}
	if v, ok := vals["tags"].([]string); !ok || v != nil {
		t.Fatalf("expected nil default tags, got %#v", vals["tags"])
	}
}

func TestObjectDecode_RebasesChildIssues(t *testing.T) {
	_, err := testTable().Decode(map[string]any{"name": "a", "tags": []any{"ok", 7}})
	iss, ok := jsonobj.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Path != "/tags/1" {
		t.Fatalf("expected issue at /tags/1, got %q", iss[0].Path)
	}
}

func TestObjectDecode_UnknownPolicy(t *testing.T) {
	m := map[string]any{"name": "a", "extra": true}
	if _, err := testTable().Decode(m); err != nil {
		t.Fatalf("permissive decode should ignore unknown keys: %v", err)
	}
	_, err := testTable().Decode(m, jsonobj.DecodeOpt{Unknown: jsonobj.UnknownStrict})
	iss, ok := jsonobj.AsIssues(err)
	if !ok || iss[0].Code != jsonobj.CodeUnknownKey || iss[0].Path != "/extra" {
		t.Fatalf("expected unknown_key at /extra, got %v", err)
	}
}

func TestObjectEncode_FullIncludesEveryKey(t *testing.T) {
	out, err := testTable().Encode(map[string]any{"name": "a"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, k := range []string{"name", "note", "tags"} {
		if _, ok := out[k]; !ok {
			t.Fatalf("full encode missing key %q", k)
		}
	}
}

func TestObjectEncodePartial_OmitsDefaults(t *testing.T) {
	out, err := testTable().EncodePartial(map[string]any{"name": "a", "note": ""})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, ok := out["note"]; ok {
		t.Fatalf("partial encode should omit default-valued note: %v", out)
	}
	out, err = testTable().EncodePartial(map[string]any{"name": "a", "note": "n"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out["note"] != "n" {
		t.Fatalf("partial encode should keep non-default note: %v", out)
	}
}

func TestObjectEncode_RequiredNilFails(t *testing.T) {
	table := jsonobj.NewObject(jsonobj.Field{Key: "key", Required: true})
	_, err := table.Encode(map[string]any{})
	var eerr *jsonobj.EncodeError
	if !errors.As(err, &eerr) {
		t.Fatalf("expected EncodeError, got %v", err)
	}
}

func TestObjectDecode_CollectsAllIssues(t *testing.T) {
	table := jsonobj.NewObject(
		jsonobj.Field{Key: "a", Required: true},
		jsonobj.Field{Key: "b", Required: true},
	)
	_, err := table.Decode(map[string]any{})
	iss, _ := jsonobj.AsIssues(err)
	if len(iss) != 2 {
		t.Fatalf("expected both required issues, got %+v", iss)
	}
}
