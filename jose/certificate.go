package jose

import (
	"crypto/x509"
	"encoding/base64"

	"github.com/ajhaydock/letsencrypt/jsonobj"
)

// CertificateDER carries an X.509 certificate in DER form. On the wire it is
// a base64url string without padding. The zero value carries no certificate.
type CertificateDER struct {
	Raw []byte
}

// NewCertificateDER wraps raw DER bytes. The bytes are copied so the wrapper
// stays a value type.
func NewCertificateDER(der []byte) CertificateDER {
	cp := make([]byte, len(der))
	copy(cp, der)
	return CertificateDER{Raw: cp}
}

// IsZero reports whether the wrapper carries no certificate.
func (c CertificateDER) IsZero() bool { return len(c.Raw) == 0 }

// Encode renders the certificate as its wire string.
func (c CertificateDER) Encode() string {
	return base64.RawURLEncoding.EncodeToString(c.Raw)
}

// X509 parses the DER bytes into a certificate.
func (c CertificateDER) X509() (*x509.Certificate, error) {
	return x509.ParseCertificate(c.Raw)
}

// CertificateFromJSON decodes the wire form of a certificate. Standard
// base64url both with and without padding is accepted on input; output is
// always unpadded.
func CertificateFromJSON(v any) (CertificateDER, error) {
	s, err := jsonobj.AsString(v)
	if err != nil {
		return CertificateDER{}, err
	}
	der, derr := base64.RawURLEncoding.DecodeString(s)
	if derr != nil {
		der, derr = base64.URLEncoding.DecodeString(s)
	}
	if derr != nil {
		return CertificateDER{}, &jsonobj.DecodeError{Issues: jsonobj.Issues{{
			Path: "/", Code: jsonobj.CodeInvalidFormat, Message: "malformed base64url certificate", Cause: derr,
		}}}
	}
	return CertificateDER{Raw: der}, nil
}
