package messages

import (
	"strings"

	"github.com/ajhaydock/letsencrypt/jsonobj"
)

// ErrorTypeNamespace is the prefix every error type carries on the wire.
const ErrorTypeNamespace = "urn:acme:error:"

// errorDescriptions is the closed set of recognized error codes and their
// human-readable descriptions.
var errorDescriptions = map[string]string{
	"badCSR":         "The CSR is unacceptable (e.g., due to a short key)",
	"badNonce":       "The client sent an unacceptable anti-replay nonce",
	"connection":     "The server could not connect to the client for DV",
	"dnssec":         "The server could not validate a DNSSEC signed domain",
	"malformed":      "The request message was malformed",
	"serverInternal": "The server experienced an internal error",
	"tls":            "The server experienced a TLS error during DV",
	"unauthorized":   "The client lacks sufficient authorization",
	"unknownHost":    "The server could not resolve a domain name",
}

// ErrorType is a recognized error code. The zero value means the error
// carries no type.
type ErrorType struct {
	token string
}

// Token returns the bare code without the namespace prefix.
func (t ErrorType) Token() string { return t.token }

// IsZero reports whether the type is unset.
func (t ErrorType) IsZero() bool { return t.token == "" }

func (t ErrorType) String() string { return "ErrorType(" + t.token + ")" }

// Description looks the code up in the recognized-error table; empty for the
// zero type.
func (t ErrorType) Description() string { return errorDescriptions[t.token] }

var (
	ErrorBadCSR         = ErrorType{"badCSR"}
	ErrorBadNonce       = ErrorType{"badNonce"}
	ErrorConnection     = ErrorType{"connection"}
	ErrorDNSSEC         = ErrorType{"dnssec"}
	ErrorMalformed      = ErrorType{"malformed"}
	ErrorServerInternal = ErrorType{"serverInternal"}
	ErrorTLS            = ErrorType{"tls"}
	ErrorUnauthorized   = ErrorType{"unauthorized"}
	ErrorUnknownHost    = ErrorType{"unknownHost"}
)

var errorTypeRegistry = jsonobj.NewRegistry("ErrorType", map[string]ErrorType{
	ErrorBadCSR.token:         ErrorBadCSR,
	ErrorBadNonce.token:       ErrorBadNonce,
	ErrorConnection.token:     ErrorConnection,
	ErrorDNSSEC.token:         ErrorDNSSEC,
	ErrorMalformed.token:      ErrorMalformed,
	ErrorServerInternal.token: ErrorServerInternal,
	ErrorTLS.token:            ErrorTLS,
	ErrorUnauthorized.token:   ErrorUnauthorized,
	ErrorUnknownHost.token:    ErrorUnknownHost,
})

// ErrorTypeFromToken interns a bare (un-namespaced) code.
func ErrorTypeFromToken(token string) (ErrorType, error) {
	return errorTypeRegistry.Decode(token)
}

// bareTokenValid enforces the token grammar: a letter followed by letters and
// digits.
func bareTokenValid(tok string) bool {
	if tok == "" {
		return false
	}
	for i, r := range tok {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Error is the structured problem document the authority returns. Type is
// optional; Description derives from it.
type Error struct {
	Type   ErrorType
	Detail string
	Title  string
}

func encodeErrorType(v any) (any, error) {
	t, _ := v.(ErrorType)
	if t.IsZero() {
		return nil, nil
	}
	return ErrorTypeNamespace + t.token, nil
}

func decodeErrorType(v any) (any, error) {
	if v == nil {
		return ErrorType{}, nil
	}
	s, err := jsonobj.AsString(v)
	if err != nil {
		return nil, err
	}
	tok, ok := strings.CutPrefix(s, ErrorTypeNamespace)
	if !ok {
		return nil, &jsonobj.DecodeError{Issues: jsonobj.Issues{{
			Path: "/", Code: jsonobj.CodeInvalidFormat,
			Message: "error type lacks the " + ErrorTypeNamespace + " prefix",
		}}}
	}
	if !bareTokenValid(tok) {
		return nil, &jsonobj.DecodeError{Issues: jsonobj.Issues{{
			Path: "/", Code: jsonobj.CodeInvalidFormat, Message: "malformed error code", Hint: "got '" + tok + "'",
		}}}
	}
	return errorTypeRegistry.Decode(tok)
}

var errorObject = jsonobj.NewObject(
	jsonobj.Field{Key: "type", Default: ErrorType{}, OmitEmpty: true, Encode: encodeErrorType, Decode: decodeErrorType},
	jsonobj.Field{Key: "detail", Default: "", OmitEmpty: true, Decode: jsonobj.DecodeString},
	jsonobj.Field{Key: "title", Default: "", OmitEmpty: true, Decode: jsonobj.DecodeString},
)

func (e Error) values() map[string]any {
	return map[string]any{"type": e.Type, "detail": e.Detail, "title": e.Title}
}

// ToJSON renders the full serialization, with the namespaced type.
func (e Error) ToJSON() (map[string]any, error) { return errorObject.Encode(e.values()) }

// ToPartialJSON renders the outbound form, omitting unset fields.
func (e Error) ToPartialJSON() (map[string]any, error) { return errorObject.EncodePartial(e.values()) }

// ErrorFromJSON validates and decodes an error document. The type, when
// present, must carry the namespace prefix and a recognized code.
func ErrorFromJSON(m map[string]any, opts ...jsonobj.DecodeOpt) (Error, error) {
	vals, err := errorObject.Decode(m, opts...)
	if err != nil {
		return Error{}, err
	}
	return Error{
		Type:   vals["type"].(ErrorType),
		Detail: vals["detail"].(string),
		Title:  vals["title"].(string),
	}, nil
}

// Description looks up the human-readable text for the error's type.
func (e Error) Description() string { return e.Type.Description() }

// WithType returns a copy carrying the given type; the receiver is unchanged.
func (e Error) WithType(t ErrorType) Error {
	e.Type = t
	return e
}

// String renders "<token> :: <description> :: <detail>", dropping empty
// segments and their separators; an untyped error renders its detail alone.
func (e Error) String() string {
	if e.Type.IsZero() {
		return e.Detail
	}
	segs := make([]string, 0, 3)
	for _, s := range []string{e.Type.Token(), e.Description(), e.Detail} {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return strings.Join(segs, " :: ")
}
