package messages_test

import (
	"testing"

	"github.com/ajhaydock/letsencrypt/challenges"
	"github.com/ajhaydock/letsencrypt/messages"
)

func TestChallengeResource_URIReadsThroughBody(t *testing.T) {
	res := messages.ChallengeResource{
		Body:     messages.ChallengeBody{URI: "http://challb", Chall: challenges.DNS{Token: "foo"}},
		AuthzURI: "http://authz",
	}
	if res.URI() != "http://challb" {
		t.Fatalf("URI() = %q, want body URI", res.URI())
	}
}

func TestChallengeResource_URIFallsBack(t *testing.T) {
	res := messages.ChallengeResource{AuthzURI: "http://authz"}
	if res.URI() != "http://authz" {
		t.Fatalf("URI() = %q, want tracked URI", res.URI())
	}
}
