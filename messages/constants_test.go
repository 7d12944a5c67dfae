package messages_test

import (
	"testing"

	"github.com/ajhaydock/letsencrypt/messages"
)

func TestStatusFromJSON_Canonicalizes(t *testing.T) {
	a, err := messages.StatusFromJSON("valid")
	if err != nil {
		t.Fatalf("StatusFromJSON: %v", err)
	}
	b, err := messages.StatusFromJSON("valid")
	if err != nil {
		t.Fatalf("StatusFromJSON: %v", err)
	}
	if a != b || a != messages.StatusValid {
		t.Fatalf("expected the canonical valid status, got %v and %v", a, b)
	}
}

func TestStatusFromJSON_UnknownToken(t *testing.T) {
	if _, err := messages.StatusFromJSON("half-done"); err == nil {
		t.Fatalf("expected failure for token outside the whitelist")
	}
}

func TestStatus_Rendering(t *testing.T) {
	if messages.StatusPending.String() != "Status(pending)" {
		t.Fatalf("unexpected rendering: %q", messages.StatusPending.String())
	}
	bare, err := messages.StatusPending.ToPartialJSON()
	if err != nil {
		t.Fatalf("ToPartialJSON: %v", err)
	}
	if bare != "pending" {
		t.Fatalf("expected bare token, got %v", bare)
	}
}

func TestIdentifierTypeFromJSON(t *testing.T) {
	typ, err := messages.IdentifierTypeFromJSON("dns")
	if err != nil {
		t.Fatalf("IdentifierTypeFromJSON: %v", err)
	}
	if typ != messages.IdentifierFQDN {
		t.Fatalf("expected canonical dns identifier type, got %v", typ)
	}
	if _, err := messages.IdentifierTypeFromJSON("email"); err == nil {
		t.Fatalf("expected failure for unrecognized identifier type")
	}
}
