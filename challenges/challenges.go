// Package challenges defines the wire shape of the challenge variants a
// certificate authority may offer and the discriminant dispatch that decodes
// them. Variants carry their fields only; proving possession is out of scope.
package challenges

import (
	"github.com/ajhaydock/letsencrypt/jsonobj"
)

// Challenge is the capability surface a variant exposes to the message layer:
// its discriminant token, full and partial serialization, and by-name field
// access for wrappers that forward lookups.
type Challenge interface {
	Type() string
	ToJSON() (map[string]any, error)
	ToPartialJSON() (map[string]any, error)
	Field(name string) (any, bool)
}

// decoders maps the "type" discriminant to the matching variant decoder. The
// table is populated here once and never mutated afterwards.
var decoders = map[string]func(map[string]any) (Challenge, error){
	TypeDNS:           dnsFromJSON,
	TypeSimpleHTTP:    simpleHTTPFromJSON,
	TypeDVSNI:         dvsniFromJSON,
	TypeRecoveryToken: recoveryTokenFromJSON,
}

// FromJSON reads the "type" discriminant from the mapping and dispatches to
// the matching variant decoder. Keys a variant does not declare (the parent
// ChallengeBody's uri and status ride along in the same mapping) are ignored.
func FromJSON(m map[string]any) (Challenge, error) {
	dv, ok := m["type"]
	if !ok {
		return nil, &jsonobj.DecodeError{Issues: jsonobj.Issues{{
			Path: "/type", Code: jsonobj.CodeDiscriminatorMissing, Message: "challenge type missing",
		}}}
	}
	tag, ok := dv.(string)
	if !ok {
		return nil, &jsonobj.DecodeError{Issues: jsonobj.Issues{{
			Path: "/type", Code: jsonobj.CodeInvalidType, Message: "challenge type must be a string",
		}}}
	}
	if tag == "" {
		return nil, &jsonobj.DecodeError{Issues: jsonobj.Issues{{
			Path: "/type", Code: jsonobj.CodeDiscriminatorMissing, Message: "challenge type missing",
		}}}
	}
	dec, ok := decoders[tag]
	if !ok {
		return nil, &jsonobj.DecodeError{Issues: jsonobj.Issues{{
			Path: "/type", Code: jsonobj.CodeDiscriminatorUnknown, Message: "unknown challenge type", Hint: "got '" + tag + "'",
		}}}
	}
	return dec(m)
}

// withType stamps the computed discriminant onto a serialized variant.
func withType(m map[string]any, err error, typ string) (map[string]any, error) {
	if err != nil {
		return nil, err
	}
	m["type"] = typ
	return m, nil
}
