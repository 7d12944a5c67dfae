package messages_test

import (
	"reflect"
	"testing"

	"github.com/ajhaydock/letsencrypt/jsonobj"
	"github.com/ajhaydock/letsencrypt/messages"
)

func TestIdentifier_RoundTrip(t *testing.T) {
	id := messages.Identifier{Type: messages.IdentifierFQDN, Value: "example.com"}
	full, err := id.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	want := map[string]any{"type": "dns", "value": "example.com"}
	if !reflect.DeepEqual(full, want) {
		t.Fatalf("ToJSON = %v, want %v", full, want)
	}
	back, err := messages.IdentifierFromJSON(full)
	if err != nil {
		t.Fatalf("IdentifierFromJSON: %v", err)
	}
	if back != id {
		t.Fatalf("round trip changed value: %#v", back)
	}
}

func TestIdentifierFromJSON_BadType(t *testing.T) {
	if _, err := messages.IdentifierFromJSON(map[string]any{"type": "email", "value": "x"}); err == nil {
		t.Fatalf("expected failure for unrecognized identifier type")
	}
}

func TestIdentifier_EncodeRequiresType(t *testing.T) {
	if _, err := (messages.Identifier{Value: "example.com"}).ToJSON(); err == nil {
		t.Fatalf("expected failure for unset identifier type")
	}
}

func TestIdentifier_StrictUnknownKeys(t *testing.T) {
	m := map[string]any{"type": "dns", "value": "example.com", "extra": 1}
	if _, err := messages.IdentifierFromJSON(m); err != nil {
		t.Fatalf("permissive decode should ignore unknown keys: %v", err)
	}
	_, err := messages.IdentifierFromJSON(m, jsonobj.DecodeOpt{Unknown: jsonobj.UnknownStrict})
	if err == nil {
		t.Fatalf("strict decode should reject unknown keys")
	}
}
