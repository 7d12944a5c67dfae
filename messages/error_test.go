package messages_test

import (
	"errors"
	"testing"

	"github.com/ajhaydock/letsencrypt/jsonobj"
	"github.com/ajhaydock/letsencrypt/messages"
)

func TestError_PartialEmitsNamespacedType(t *testing.T) {
	e := messages.Error{Type: messages.ErrorMalformed, Detail: "foo", Title: "title"}
	m, err := e.ToPartialJSON()
	if err != nil {
		t.Fatalf("ToPartialJSON: %v", err)
	}
	if m["type"] != "urn:acme:error:malformed" {
		t.Fatalf("expected namespaced type, got %v", m["type"])
	}
	back, err := messages.ErrorFromJSON(m)
	if err != nil {
		t.Fatalf("ErrorFromJSON: %v", err)
	}
	if back.Type != messages.ErrorMalformed {
		t.Fatalf("expected bare token back, got %v", back.Type)
	}
}

func TestError_RoundTrip(t *testing.T) {
	e := messages.Error{Type: messages.ErrorMalformed, Detail: "foo", Title: "title"}
	full, err := e.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	back, err := messages.ErrorFromJSON(full)
	if err != nil {
		t.Fatalf("ErrorFromJSON: %v", err)
	}
	if !jsonobj.Equal(e, back) {
		t.Fatalf("round trip changed value: %#v", back)
	}
}

func TestErrorFromJSON_MissingPrefix(t *testing.T) {
	for _, typ := range []string{"malformed", "not valid bare type"} {
		_, err := messages.ErrorFromJSON(map[string]any{"type": typ, "detail": "foo", "title": "some title"})
		var derr *jsonobj.DecodeError
		if !errors.As(err, &derr) {
			t.Fatalf("type %q: expected DecodeError, got %v", typ, err)
		}
	}
}

func TestErrorFromJSON_UnrecognizedCode(t *testing.T) {
	_, err := messages.ErrorFromJSON(map[string]any{"type": "urn:acme:error:baz", "detail": "foo"})
	var derr *jsonobj.DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestErrorFromJSON_MalformedToken(t *testing.T) {
	_, err := messages.ErrorFromJSON(map[string]any{"type": "urn:acme:error:not a token"})
	if err == nil {
		t.Fatalf("expected failure for token outside the grammar")
	}
}

func TestError_Description(t *testing.T) {
	e := messages.Error{Type: messages.ErrorMalformed, Detail: "foo"}
	if e.Description() != "The request message was malformed" {
		t.Fatalf("unexpected description: %q", e.Description())
	}
	if (messages.Error{}).Description() != "" {
		t.Fatalf("untyped error must have empty description")
	}
}

func TestError_Hashable(t *testing.T) {
	e := messages.Error{Type: messages.ErrorMalformed, Detail: "foo", Title: "title"}
	full, err := e.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	a, err := messages.ErrorFromJSON(full)
	if err != nil {
		t.Fatalf("ErrorFromJSON: %v", err)
	}
	b, err := messages.ErrorFromJSON(full)
	if err != nil {
		t.Fatalf("ErrorFromJSON: %v", err)
	}
	fa, err := jsonobj.Fingerprint(a)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	fb, err := jsonobj.Fingerprint(b)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if fa != fb {
		t.Fatalf("decoding the same mapping twice must hash equal")
	}
}

func TestError_String(t *testing.T) {
	e := messages.Error{Type: messages.ErrorMalformed, Detail: "foo", Title: "title"}
	want := "malformed :: The request message was malformed :: foo"
	if e.String() != want {
		t.Fatalf("String() = %q, want %q", e.String(), want)
	}
	if e.WithType(messages.ErrorType{}).String() != "foo" {
		t.Fatalf("untyped error should render its detail alone, got %q", e.WithType(messages.ErrorType{}).String())
	}
}

func TestError_WithTypeLeavesReceiver(t *testing.T) {
	e := messages.Error{Type: messages.ErrorMalformed, Detail: "foo"}
	_ = e.WithType(messages.ErrorUnauthorized)
	if e.Type != messages.ErrorMalformed {
		t.Fatalf("WithType must not mutate the receiver")
	}
}

func TestErrorTypeFromToken(t *testing.T) {
	typ, err := messages.ErrorTypeFromToken("unauthorized")
	if err != nil {
		t.Fatalf("ErrorTypeFromToken: %v", err)
	}
	if typ != messages.ErrorUnauthorized {
		t.Fatalf("expected canonical unauthorized, got %v", typ)
	}
	if _, err := messages.ErrorTypeFromToken("baz"); err == nil {
		t.Fatalf("expected failure for unrecognized code")
	}
}
