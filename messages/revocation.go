package messages

import (
	"net/url"

	"github.com/ajhaydock/letsencrypt/jose"
	"github.com/ajhaydock/letsencrypt/jsonobj"
)

// revokeCertPath is the fixed resource path of the revoke-certificate
// endpoint under an authority's base URL.
const revokeCertPath = "/acme/revoke-cert"

// Revocation asks the authority to revoke the carried certificate.
type Revocation struct {
	Certificate jose.CertificateDER
}

func encodeCertificate(v any) (any, error) {
	c, _ := v.(jose.CertificateDER)
	if c.IsZero() {
		return nil, jsonobj.NewEncodeError(jsonobj.Issues{{
			Path: "/", Code: jsonobj.CodeRequired, Message: "certificate is unset",
		}})
	}
	return c.Encode(), nil
}

func decodeCertificate(v any) (any, error) {
	return jose.CertificateFromJSON(v)
}

var revocationObject = jsonobj.NewObject(
	jsonobj.Field{Key: "certificate", Required: true, Encode: encodeCertificate, Decode: decodeCertificate},
)

func (r Revocation) values() map[string]any {
	return map[string]any{"certificate": r.Certificate}
}

// ToJSON renders the full serialization.
func (r Revocation) ToJSON() (map[string]any, error) { return revocationObject.Encode(r.values()) }

// ToPartialJSON renders the outbound form; the certificate is always present.
func (r Revocation) ToPartialJSON() (map[string]any, error) {
	return revocationObject.EncodePartial(r.values())
}

// RevocationFromJSON validates and decodes a revocation mapping.
func RevocationFromJSON(m map[string]any, opts ...jsonobj.DecodeOpt) (Revocation, error) {
	vals, err := revocationObject.Decode(m, opts...)
	if err != nil {
		return Revocation{}, err
	}
	return Revocation{Certificate: vals["certificate"].(jose.CertificateDER)}, nil
}

// RevocationURL derives the canonical revoke-certificate endpoint from a
// directory base URL. Any resource path already on the base is discarded, so
// a URL pointing at an arbitrary resource under the same authority yields the
// same endpoint.
func RevocationURL(directoryBase string) (string, error) {
	u, err := url.Parse(directoryBase)
	if err != nil {
		return "", err
	}
	u.Path = revokeCertPath
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}
