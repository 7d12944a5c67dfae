package messages

import (
	"strconv"

	"github.com/ajhaydock/letsencrypt/jsonobj"
)

// Authorization aggregates the identifier under validation, the challenges
// the authority offers, and the acceptable challenge combinations as index
// sets into the challenge list.
type Authorization struct {
	Identifier   Identifier
	Challenges   []ChallengeBody
	Combinations [][]int
}

func decodeIdentifier(v any) (any, error) {
	m, err := jsonobj.AsObject(v)
	if err != nil {
		return nil, err
	}
	return IdentifierFromJSON(m)
}

func decodeChallengeBodies(v any) (any, error) {
	raw, err := jsonobj.AsSlice(v)
	if err != nil {
		return nil, err
	}
	out := make([]ChallengeBody, 0, len(raw))
	for i, e := range raw {
		em, err := jsonobj.AsObject(e)
		if err != nil {
			return nil, &jsonobj.DecodeError{Issues: rebaseIndex(i, err)}
		}
		cb, err := ChallengeBodyFromJSON(em)
		if err != nil {
			return nil, &jsonobj.DecodeError{Issues: rebaseIndex(i, err)}
		}
		out = append(out, cb)
	}
	return out, nil
}

func decodeCombinations(v any) (any, error) {
	raw, err := jsonobj.AsSlice(v)
	if err != nil {
		return nil, err
	}
	out := make([][]int, 0, len(raw))
	for i, e := range raw {
		es, err := jsonobj.AsSlice(e)
		if err != nil {
			return nil, &jsonobj.DecodeError{Issues: rebaseIndex(i, err)}
		}
		combo := make([]int, 0, len(es))
		for j, idx := range es {
			n, err := jsonobj.AsInt(idx)
			if err != nil {
				return nil, &jsonobj.DecodeError{Issues: rebaseIndex(i, &jsonobj.DecodeError{Issues: rebaseIndex(j, err)})}
			}
			combo = append(combo, n)
		}
		out = append(out, combo)
	}
	return out, nil
}

// rebaseIndex prefixes issue paths with /<i> for array elements.
func rebaseIndex(i int, err error) jsonobj.Issues {
	iss := issuesOf(err)
	base := "/" + strconv.Itoa(i)
	out := make(jsonobj.Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

var authorizationObject = jsonobj.NewObject(
	jsonobj.Field{Key: "identifier", Required: true, Decode: decodeIdentifier},
	jsonobj.Field{Key: "challenges", Default: []ChallengeBody(nil), OmitEmpty: true, Decode: decodeChallengeBodies},
	jsonobj.Field{Key: "combinations", Default: [][]int(nil), OmitEmpty: true, Decode: decodeCombinations},
)

func (a Authorization) values(full bool) (map[string]any, error) {
	idJSON, err := a.Identifier.ToJSON()
	if err != nil {
		return nil, err
	}
	vals := map[string]any{"identifier": idJSON}
	if len(a.Challenges) > 0 {
		challs := make([]any, 0, len(a.Challenges))
		for _, cb := range a.Challenges {
			var cj map[string]any
			if full {
				cj, err = cb.ToJSON()
			} else {
				cj, err = cb.ToPartialJSON()
			}
			if err != nil {
				return nil, err
			}
			challs = append(challs, cj)
		}
		vals["challenges"] = challs
	}
	if len(a.Combinations) > 0 {
		combos := make([]any, 0, len(a.Combinations))
		for _, c := range a.Combinations {
			combos = append(combos, intsToAny(c))
		}
		vals["combinations"] = combos
	}
	return vals, nil
}

func intsToAny(xs []int) []any {
	out := make([]any, 0, len(xs))
	for _, x := range xs {
		out = append(out, x)
	}
	return out
}

// ToJSON renders the full serialization with challenges fully serialized.
func (a Authorization) ToJSON() (map[string]any, error) {
	vals, err := a.values(true)
	if err != nil {
		return nil, err
	}
	return authorizationObject.Encode(vals)
}

// ToPartialJSON renders the outbound form: empty challenge and combination
// lists are dropped, and nested challenges use their own partial form.
func (a Authorization) ToPartialJSON() (map[string]any, error) {
	vals, err := a.values(false)
	if err != nil {
		return nil, err
	}
	return authorizationObject.EncodePartial(vals)
}

// AuthorizationFromJSON validates and decodes an authorization mapping. Every
// combination index must reference an existing challenge; out-of-range
// indices fail the decode rather than surfacing later as an index fault.
func AuthorizationFromJSON(m map[string]any, opts ...jsonobj.DecodeOpt) (Authorization, error) {
	vals, err := authorizationObject.Decode(m, opts...)
	if err != nil {
		return Authorization{}, err
	}
	a := Authorization{
		Identifier:   vals["identifier"].(Identifier),
		Challenges:   vals["challenges"].([]ChallengeBody),
		Combinations: vals["combinations"].([][]int),
	}
	var iss jsonobj.Issues
	for i, combo := range a.Combinations {
		for j, idx := range combo {
			if idx < 0 || idx >= len(a.Challenges) {
				iss = jsonobj.AppendIssues(iss, jsonobj.Issue{
					Path:    "/combinations/" + strconv.Itoa(i) + "/" + strconv.Itoa(j),
					Code:    jsonobj.CodeOutOfRange,
					Message: "combination index out of range",
					Hint:    "got " + strconv.Itoa(idx) + " with " + strconv.Itoa(len(a.Challenges)) + " challenges",
				})
			}
		}
	}
	if len(iss) > 0 {
		return Authorization{}, &jsonobj.DecodeError{Issues: iss}
	}
	return a, nil
}

// ResolvedCombinations expands the combination index sets into tuples of
// challenge bodies, preserving the declared order of combinations and of
// indices within each. It is a pure projection recomputed on every call; the
// returned tuples share the underlying ChallengeBody values. Indices out of
// range (possible only on hand-built values that skipped decoding) are
// dropped rather than faulting.
func (a Authorization) ResolvedCombinations() [][]ChallengeBody {
	out := make([][]ChallengeBody, 0, len(a.Combinations))
	for _, combo := range a.Combinations {
		tuple := make([]ChallengeBody, 0, len(combo))
		for _, idx := range combo {
			if idx < 0 || idx >= len(a.Challenges) {
				continue
			}
			tuple = append(tuple, a.Challenges[idx])
		}
		out = append(out, tuple)
	}
	return out
}
