package challenges

import (
	"github.com/ajhaydock/letsencrypt/jsonobj"
)

// Discriminant tokens for the closed variant set.
const (
	TypeDNS           = "dns"
	TypeSimpleHTTP    = "simpleHttp"
	TypeDVSNI         = "dvsni"
	TypeRecoveryToken = "recoveryToken"
)

// DNS asks the client to provision a validation record under the domain.
type DNS struct {
	Token string
}

var dnsObject = jsonobj.NewObject(
	jsonobj.Field{Key: "token", Required: true, Decode: jsonobj.DecodeString},
)

func (c DNS) Type() string { return TypeDNS }

func (c DNS) values() map[string]any { return map[string]any{"token": c.Token} }

func (c DNS) ToJSON() (map[string]any, error) {
	m, err := dnsObject.Encode(c.values())
	return withType(m, err, TypeDNS)
}

func (c DNS) ToPartialJSON() (map[string]any, error) {
	m, err := dnsObject.EncodePartial(c.values())
	return withType(m, err, TypeDNS)
}

func (c DNS) Field(name string) (any, bool) {
	if name == "token" {
		return c.Token, true
	}
	return nil, false
}

func dnsFromJSON(m map[string]any) (Challenge, error) {
	vals, err := dnsObject.Decode(m)
	if err != nil {
		return nil, err
	}
	return DNS{Token: vals["token"].(string)}, nil
}

// SimpleHTTP asks the client to serve the token over HTTP on the domain.
type SimpleHTTP struct {
	Token string
}

var simpleHTTPObject = jsonobj.NewObject(
	jsonobj.Field{Key: "token", Required: true, Decode: jsonobj.DecodeString},
)

func (c SimpleHTTP) Type() string { return TypeSimpleHTTP }

func (c SimpleHTTP) values() map[string]any { return map[string]any{"token": c.Token} }

func (c SimpleHTTP) ToJSON() (map[string]any, error) {
	m, err := simpleHTTPObject.Encode(c.values())
	return withType(m, err, TypeSimpleHTTP)
}

func (c SimpleHTTP) ToPartialJSON() (map[string]any, error) {
	m, err := simpleHTTPObject.EncodePartial(c.values())
	return withType(m, err, TypeSimpleHTTP)
}

func (c SimpleHTTP) Field(name string) (any, bool) {
	if name == "token" {
		return c.Token, true
	}
	return nil, false
}

func simpleHTTPFromJSON(m map[string]any) (Challenge, error) {
	vals, err := simpleHTTPObject.Decode(m)
	if err != nil {
		return nil, err
	}
	return SimpleHTTP{Token: vals["token"].(string)}, nil
}

// DVSNI asks the client to present a computed certificate over TLS. R and
// Nonce are opaque wire strings here; their cryptographic meaning is the
// validator's concern.
type DVSNI struct {
	R     string
	Nonce string
}

var dvsniObject = jsonobj.NewObject(
	jsonobj.Field{Key: "r", Required: true, Decode: jsonobj.DecodeString},
	jsonobj.Field{Key: "nonce", Required: true, Decode: jsonobj.DecodeString},
)

func (c DVSNI) Type() string { return TypeDVSNI }

func (c DVSNI) values() map[string]any { return map[string]any{"r": c.R, "nonce": c.Nonce} }

func (c DVSNI) ToJSON() (map[string]any, error) {
	m, err := dvsniObject.Encode(c.values())
	return withType(m, err, TypeDVSNI)
}

func (c DVSNI) ToPartialJSON() (map[string]any, error) {
	m, err := dvsniObject.EncodePartial(c.values())
	return withType(m, err, TypeDVSNI)
}

func (c DVSNI) Field(name string) (any, bool) {
	switch name {
	case "r":
		return c.R, true
	case "nonce":
		return c.Nonce, true
	}
	return nil, false
}

func dvsniFromJSON(m map[string]any) (Challenge, error) {
	vals, err := dvsniObject.Decode(m)
	if err != nil {
		return nil, err
	}
	return DVSNI{R: vals["r"].(string), Nonce: vals["nonce"].(string)}, nil
}

// RecoveryToken asks the client to present a token from a prior registration.
// The token is optional on the challenge side.
type RecoveryToken struct {
	Token string
}

var recoveryTokenObject = jsonobj.NewObject(
	jsonobj.Field{Key: "token", Default: "", OmitEmpty: true, Decode: jsonobj.DecodeString},
)

func (c RecoveryToken) Type() string { return TypeRecoveryToken }

func (c RecoveryToken) values() map[string]any { return map[string]any{"token": c.Token} }

func (c RecoveryToken) ToJSON() (map[string]any, error) {
	m, err := recoveryTokenObject.Encode(c.values())
	return withType(m, err, TypeRecoveryToken)
}

func (c RecoveryToken) ToPartialJSON() (map[string]any, error) {
	m, err := recoveryTokenObject.EncodePartial(c.values())
	return withType(m, err, TypeRecoveryToken)
}

func (c RecoveryToken) Field(name string) (any, bool) {
	if name == "token" {
		return c.Token, true
	}
	return nil, false
}

func recoveryTokenFromJSON(m map[string]any) (Challenge, error) {
	vals, err := recoveryTokenObject.Decode(m)
	if err != nil {
		return nil, err
	}
	return RecoveryToken{Token: vals["token"].(string)}, nil
}
