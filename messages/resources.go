package messages

import "github.com/ajhaydock/letsencrypt/jose"

// Resource wrappers pair a message body with the URIs the transport layer
// tracked while exchanging it. They are plain aggregates; only the challenge
// wrapper carries derived behavior.

// ChallengeResource pairs a challenge body with the URI of the authorization
// it belongs to.
type ChallengeResource struct {
	Body     ChallengeBody
	AuthzURI string
}

// URI reads through to the body's own challenge URI when it carries one,
// falling back to the wrapper's tracked URI.
func (r ChallengeResource) URI() string {
	if r.Body.URI != "" {
		return r.Body.URI
	}
	return r.AuthzURI
}

// AuthorizationResource pairs an authorization body with its own URI and the
// new-certificate endpoint advertised alongside it.
type AuthorizationResource struct {
	Body       Authorization
	URI        string
	NewCertURI string
}

// RegistrationResource pairs a registration body with its own URI, the
// new-authorization endpoint, and the terms-of-service URI the authority
// linked.
type RegistrationResource struct {
	Body           Registration
	URI            string
	NewAuthzrURI   string
	TermsOfService string
}

// CertificateResource pairs issued certificate material with its URI, the
// chain endpoint, and the authorizations that produced it.
type CertificateResource struct {
	Body         jose.CertificateDER
	URI          string
	CertChainURI string
	AuthzrURIs   []string
}
