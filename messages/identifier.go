package messages

import (
	"github.com/ajhaydock/letsencrypt/jsonobj"
)

// Identifier names the subject an authorization covers.
type Identifier struct {
	Type  IdentifierType
	Value string
}

func encodeIdentifierType(v any) (any, error) {
	t, _ := v.(IdentifierType)
	if t.IsZero() {
		return nil, jsonobj.NewEncodeError(jsonobj.Issues{{
			Path: "/", Code: jsonobj.CodeRequired, Message: "identifier type is unset",
		}})
	}
	return t.Token(), nil
}

func decodeIdentifierType(v any) (any, error) {
	return identifierTypeRegistry.Decode(v)
}

var identifierObject = jsonobj.NewObject(
	jsonobj.Field{Key: "type", Required: true, Encode: encodeIdentifierType, Decode: decodeIdentifierType},
	jsonobj.Field{Key: "value", Required: true, Decode: jsonobj.DecodeString},
)

func (id Identifier) values() map[string]any {
	return map[string]any{"type": id.Type, "value": id.Value}
}

// ToJSON renders the full serialization.
func (id Identifier) ToJSON() (map[string]any, error) { return identifierObject.Encode(id.values()) }

// ToPartialJSON renders the outbound form. Both fields are required, so it
// matches ToJSON.
func (id Identifier) ToPartialJSON() (map[string]any, error) {
	return identifierObject.EncodePartial(id.values())
}

// IdentifierFromJSON validates and decodes an identifier mapping.
func IdentifierFromJSON(m map[string]any, opts ...jsonobj.DecodeOpt) (Identifier, error) {
	vals, err := identifierObject.Decode(m, opts...)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{
		Type:  vals["type"].(IdentifierType),
		Value: vals["value"].(string),
	}, nil
}
