package messages

import (
	"github.com/ajhaydock/letsencrypt/jsonobj"
)

// Status is the lifecycle state of an authorization or challenge. Values are
// drawn from a closed registry; the zero value is unset and encodes as the
// pending default where one applies.
type Status struct {
	token string
}

// Token returns the bare wire token.
func (s Status) Token() string { return s.token }

// IsZero reports whether the status is unset.
func (s Status) IsZero() bool { return s.token == "" }

func (s Status) String() string { return "Status(" + s.token + ")" }

// ToPartialJSON renders the status as its bare wire token.
func (s Status) ToPartialJSON() (any, error) { return s.token, nil }

var (
	StatusUnknown    = Status{"unknown"}
	StatusPending    = Status{"pending"}
	StatusProcessing = Status{"processing"}
	StatusValid      = Status{"valid"}
	StatusInvalid    = Status{"invalid"}
	StatusRevoked    = Status{"revoked"}
)

var statusRegistry = jsonobj.NewRegistry("Status", map[string]Status{
	StatusUnknown.token:    StatusUnknown,
	StatusPending.token:    StatusPending,
	StatusProcessing.token: StatusProcessing,
	StatusValid.token:      StatusValid,
	StatusInvalid.token:    StatusInvalid,
	StatusRevoked.token:    StatusRevoked,
})

// StatusFromJSON interns a wire token to its canonical Status. Tokens outside
// the registry fail with a DecodeError.
func StatusFromJSON(v any) (Status, error) {
	return statusRegistry.Decode(v)
}

// IdentifierType names the kind of identifier an authorization covers.
type IdentifierType struct {
	token string
}

// Token returns the bare wire token.
func (t IdentifierType) Token() string { return t.token }

// IsZero reports whether the type is unset.
func (t IdentifierType) IsZero() bool { return t.token == "" }

func (t IdentifierType) String() string { return "IdentifierType(" + t.token + ")" }

// ToPartialJSON renders the type as its bare wire token.
func (t IdentifierType) ToPartialJSON() (any, error) { return t.token, nil }

// IdentifierFQDN identifies a fully qualified domain name.
var IdentifierFQDN = IdentifierType{"dns"}

var identifierTypeRegistry = jsonobj.NewRegistry("IdentifierType", map[string]IdentifierType{
	IdentifierFQDN.token: IdentifierFQDN,
})

// IdentifierTypeFromJSON interns a wire token to its canonical
// IdentifierType.
func IdentifierTypeFromJSON(v any) (IdentifierType, error) {
	return identifierTypeRegistry.Decode(v)
}
