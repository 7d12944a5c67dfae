package jsonobj_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/ajhaydock/letsencrypt/jsonobj"
)

func TestFromJSONBytes_PreservesNumbers(t *testing.T) {
	m, err := jsonobj.FromJSONBytes([]byte(`{"combinations":[[0,2]]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	combos := m["combinations"].([]any)[0].([]any)
	if combos[1] != json.Number("2") {
		t.Fatalf("expected json.Number, got %T %v", combos[1], combos[1])
	}
}

func TestFromJSONBytes_Malformed(t *testing.T) {
	if _, err := jsonobj.FromJSONBytes([]byte(`{`)); err == nil {
		t.Fatalf("expected parse failure")
	}
	if _, err := jsonobj.FromJSONBytes([]byte(`[1,2]`)); err == nil {
		t.Fatalf("expected failure for non-object root")
	}
}

func TestFromYAMLBytes_MatchesJSON(t *testing.T) {
	jm, err := jsonobj.FromJSONBytes([]byte(`{"type":"dns","token":"foo"}`))
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	ym, err := jsonobj.FromYAMLBytes([]byte("type: dns\ntoken: foo\n"))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !reflect.DeepEqual(jm, ym) {
		t.Fatalf("yaml and json decodes differ: %v vs %v", ym, jm)
	}
}

func TestFromYAMLBytes_NonMapping(t *testing.T) {
	if _, err := jsonobj.FromYAMLBytes([]byte("- a\n- b\n")); err == nil {
		t.Fatalf("expected failure for sequence root")
	}
}
