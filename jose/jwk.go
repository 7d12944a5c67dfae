// Package jose holds the opaque collaborator types the message catalog
// carries across the wire boundary: JSON Web Keys and DER certificates. They
// only transport key and certificate material; signing and verification live
// elsewhere.
package jose

import (
	gojson "github.com/goccy/go-json"
	gojose "gopkg.in/square/go-jose.v2"

	"github.com/ajhaydock/letsencrypt/jsonobj"
)

// JWK wraps a go-jose JSON Web Key behind the ToJSON/FromJSON surface the
// message catalog expects. The zero value carries no key.
type JWK struct {
	Key gojose.JSONWebKey
}

// NewJWK wraps an existing go-jose key.
func NewJWK(k gojose.JSONWebKey) *JWK { return &JWK{Key: k} }

// ToJSON renders the key as a JSON-compatible mapping.
func (k *JWK) ToJSON() (map[string]any, error) {
	b, err := k.Key.MarshalJSON()
	if err != nil {
		return nil, jsonobj.NewEncodeError(jsonobj.Issues{{
			Path: "/", Code: jsonobj.CodeInvalidType, Message: "key is not JSON-compatible", Cause: err,
		}})
	}
	var m map[string]any
	if err := gojson.Unmarshal(b, &m); err != nil {
		return nil, jsonobj.NewEncodeError(jsonobj.Issues{{
			Path: "/", Code: jsonobj.CodeParseError, Message: "key serialization is not an object", Cause: err,
		}})
	}
	return m, nil
}

// JWKFromJSON validates and decodes a JWK mapping.
func JWKFromJSON(m map[string]any) (*JWK, error) {
	b, err := gojson.Marshal(m)
	if err != nil {
		return nil, &jsonobj.DecodeError{Issues: jsonobj.Issues{{
			Path: "/", Code: jsonobj.CodeInvalidType, Message: "key mapping is not JSON-compatible", Cause: err,
		}}}
	}
	var k gojose.JSONWebKey
	if err := k.UnmarshalJSON(b); err != nil {
		return nil, &jsonobj.DecodeError{Issues: jsonobj.Issues{{
			Path: "/", Code: jsonobj.CodeInvalidFormat, Message: "malformed JWK", Cause: err,
		}}}
	}
	return &JWK{Key: k}, nil
}
