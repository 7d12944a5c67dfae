package messages

import (
	"github.com/ajhaydock/letsencrypt/jose"
	"github.com/ajhaydock/letsencrypt/jsonobj"
)

// Registration is the client's account document: its signing key plus
// optional contact and agreement metadata.
type Registration struct {
	Key           *jose.JWK
	Contact       []string
	RecoveryToken string
	Agreement     string
}

func encodeKey(v any) (any, error) {
	k, _ := v.(*jose.JWK)
	if k == nil {
		return nil, jsonobj.NewEncodeError(jsonobj.Issues{{
			Path: "/", Code: jsonobj.CodeRequired, Message: "registration key is unset",
		}})
	}
	return k.ToJSON()
}

func decodeKey(v any) (any, error) {
	m, err := jsonobj.AsObject(v)
	if err != nil {
		return nil, err
	}
	return jose.JWKFromJSON(m)
}

var registrationObject = jsonobj.NewObject(
	jsonobj.Field{Key: "key", Required: true, Encode: encodeKey, Decode: decodeKey},
	jsonobj.Field{Key: "contact", Default: []string(nil), OmitEmpty: true, Decode: jsonobj.DecodeStringSlice},
	jsonobj.Field{Key: "recoveryToken", Default: "", OmitEmpty: true, Decode: jsonobj.DecodeString},
	jsonobj.Field{Key: "agreement", Default: "", OmitEmpty: true, Decode: jsonobj.DecodeString},
)

func (r Registration) values() map[string]any {
	return map[string]any{
		"key":           r.Key,
		"contact":       r.Contact,
		"recoveryToken": r.RecoveryToken,
		"agreement":     r.Agreement,
	}
}

// ToJSON renders the full serialization; the key must be set.
func (r Registration) ToJSON() (map[string]any, error) {
	return registrationObject.Encode(r.values())
}

// ToPartialJSON renders the outbound form, omitting unset optional fields.
func (r Registration) ToPartialJSON() (map[string]any, error) {
	return registrationObject.EncodePartial(r.values())
}

// WithAgreement returns a copy carrying the given agreement URL; the receiver
// is unchanged. Clients use it to re-send a registration after accepting the
// authority's terms.
func (r Registration) WithAgreement(agreement string) Registration {
	r.Agreement = agreement
	return r
}

// RegistrationFromJSON validates and decodes a registration mapping.
func RegistrationFromJSON(m map[string]any, opts ...jsonobj.DecodeOpt) (Registration, error) {
	vals, err := registrationObject.Decode(m, opts...)
	if err != nil {
		return Registration{}, err
	}
	reg := Registration{
		Key:           vals["key"].(*jose.JWK),
		RecoveryToken: vals["recoveryToken"].(string),
		Agreement:     vals["agreement"].(string),
	}
	if c, ok := vals["contact"].([]string); ok {
		reg.Contact = c
	}
	return reg, nil
}
