package messages

import (
	"fmt"

	"github.com/ajhaydock/letsencrypt/challenges"
	"github.com/ajhaydock/letsencrypt/jsonobj"
)

// ChallengeBody wraps a challenge variant with the protocol metadata the
// authority attaches to it: the challenge URI and its status. Serialization
// merges the variant's own fields with the wrapper's, and field lookups fall
// through to the variant, so the body behaves as a superset of the variant's
// field set.
type ChallengeBody struct {
	URI    string
	Status Status // Zero means the pending default.
	Chall  challenges.Challenge
}

func encodeStatus(v any) (any, error) {
	s, _ := v.(Status)
	return s.Token(), nil
}

func decodeStatus(v any) (any, error) {
	return statusRegistry.Decode(v)
}

var challengeBodyObject = jsonobj.NewObject(
	jsonobj.Field{Key: "uri", Required: true, Decode: jsonobj.DecodeString},
	jsonobj.Field{Key: "status", Default: StatusPending, OmitEmpty: true, Encode: encodeStatus, Decode: decodeStatus},
)

// EffectiveStatus returns the status with the pending default applied.
func (b ChallengeBody) EffectiveStatus() Status {
	if b.Status.IsZero() {
		return StatusPending
	}
	return b.Status
}

func (b ChallengeBody) values() map[string]any {
	return map[string]any{"uri": b.URI, "status": b.EffectiveStatus()}
}

// ToJSON renders the full serialization: the variant's full fields (with its
// type discriminant) merged with uri and status, wrapper fields winning on
// collision.
func (b ChallengeBody) ToJSON() (map[string]any, error) {
	return b.merge(true)
}

// ToPartialJSON renders the outbound form; status is omitted while it sits at
// the pending default.
func (b ChallengeBody) ToPartialJSON() (map[string]any, error) {
	return b.merge(false)
}

func (b ChallengeBody) merge(full bool) (map[string]any, error) {
	if b.Chall == nil {
		return nil, jsonobj.NewEncodeError(jsonobj.Issues{{
			Path: "/", Code: jsonobj.CodeRequired, Message: "challenge body carries no challenge",
		}})
	}
	var out map[string]any
	var err error
	if full {
		out, err = b.Chall.ToJSON()
	} else {
		out, err = b.Chall.ToPartialJSON()
	}
	if err != nil {
		return nil, err
	}
	var own map[string]any
	if full {
		own, err = challengeBodyObject.Encode(b.values())
	} else {
		own, err = challengeBodyObject.EncodePartial(b.values())
	}
	if err != nil {
		return nil, err
	}
	for k, v := range own {
		out[k] = v
	}
	return out, nil
}

// ChallengeBodyFromJSON validates and decodes a challenge mapping: the
// wrapper's own fields plus the variant selected by the type discriminant.
// The wrapper and the variant share one mapping, so unknown keys are always
// ignored here.
func ChallengeBodyFromJSON(m map[string]any) (ChallengeBody, error) {
	vals, err := challengeBodyObject.Decode(m)
	var iss jsonobj.Issues
	if err != nil {
		iss = jsonobj.AppendIssues(iss, issuesOf(err)...)
	}
	chall, cerr := challenges.FromJSON(m)
	if cerr != nil {
		iss = jsonobj.AppendIssues(iss, issuesOf(cerr)...)
	}
	if len(iss) > 0 {
		return ChallengeBody{}, &jsonobj.DecodeError{Issues: iss}
	}
	return ChallengeBody{
		URI:    vals["uri"].(string),
		Status: vals["status"].(Status),
		Chall:  chall,
	}, nil
}

// Field answers by-name lookups: the wrapper's own fields first, then the
// embedded variant. Names neither defines fail with ErrNoSuchField.
func (b ChallengeBody) Field(name string) (any, error) {
	switch name {
	case "uri":
		return b.URI, nil
	case "status":
		return b.EffectiveStatus(), nil
	case "type":
		if b.Chall != nil {
			return b.Chall.Type(), nil
		}
	default:
		if b.Chall != nil {
			if v, ok := b.Chall.Field(name); ok {
				return v, nil
			}
		}
	}
	return nil, fmt.Errorf("challenge body field %q: %w", name, jsonobj.ErrNoSuchField)
}

// issuesOf extracts the issue list from a decode failure, falling back to a
// parse_error issue for foreign errors.
func issuesOf(err error) jsonobj.Issues {
	if iss, ok := jsonobj.AsIssues(err); ok {
		return iss
	}
	return jsonobj.Issues{{Path: "/", Code: jsonobj.CodeParseError, Message: err.Error(), Cause: err}}
}
