package jsonobj

// Registry is a closed whitelist of wire tokens for one constant type. Each
// token maps to a single canonical value shared by every decode, so equality
// within a registry reduces to comparing those values. Registries are built
// once at package init and are read-only afterwards.
type Registry[T any] struct {
	name    string
	byToken map[string]T
}

// NewRegistry builds a constant registry. The entries map is copied; later
// mutation of the argument has no effect.
func NewRegistry[T any](name string, entries map[string]T) *Registry[T] {
	byToken := make(map[string]T, len(entries))
	for tok, v := range entries {
		byToken[tok] = v
	}
	return &Registry[T]{name: name, byToken: byToken}
}

// Name returns the registry name used in issue hints and renderings.
func (r *Registry[T]) Name() string { return r.name }

// Decode returns the canonical value for a wire token. Non-string input and
// tokens outside the whitelist fail with a DecodeError.
func (r *Registry[T]) Decode(v any) (T, error) {
	var zero T
	tok, ok := v.(string)
	if !ok {
		return zero, decodeIssue("/", CodeInvalidType, "expected string token for "+r.name)
	}
	cv, ok := r.byToken[tok]
	if !ok {
		return zero, &DecodeError{Issues: Issues{{
			Path:    "/",
			Code:    CodeInvalidEnum,
			Message: "unrecognized " + r.name + " token",
			Hint:    "got '" + tok + "'",
		}}}
	}
	return cv, nil
}

// Has reports whether the token belongs to the whitelist.
func (r *Registry[T]) Has(token string) bool {
	_, ok := r.byToken[token]
	return ok
}
