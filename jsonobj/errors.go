package jsonobj

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = "invalid_type"
	CodeRequired             = "required"
	CodeUnknownKey           = "unknown_key"
	CodeInvalidEnum          = "invalid_enum"
	CodeInvalidFormat        = "invalid_format"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeOutOfRange           = "out_of_range"
	CodeParseError           = "parse_error"
)

// Issue represents a single decode or encode failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /challenges/2/status).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected forms, etc.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// DecodeError reports that a JSON-compatible mapping could not be validated
// and assembled into an object. It always carries at least one Issue and is
// raised before any partial object escapes.
type DecodeError struct {
	Issues Issues
}

func (e *DecodeError) Error() string { return "decode: " + e.Issues.Error() }

func (e *DecodeError) Unwrap() error { return e.Issues }

// NewDecodeError wraps issues into a DecodeError; nil when there are none.
func NewDecodeError(iss Issues) error {
	if len(iss) == 0 {
		return nil
	}
	return &DecodeError{Issues: iss}
}

// EncodeError reports that a field value could not be converted to a
// JSON-compatible form.
type EncodeError struct {
	Issues Issues
}

func (e *EncodeError) Error() string { return "encode: " + e.Issues.Error() }

func (e *EncodeError) Unwrap() error { return e.Issues }

// NewEncodeError wraps issues into an EncodeError; nil when there are none.
func NewEncodeError(iss Issues) error {
	if len(iss) == 0 {
		return nil
	}
	return &EncodeError{Issues: iss}
}

// ErrNoSuchField is returned by field forwarding when neither the wrapper nor
// the embedded object defines the requested name.
var ErrNoSuchField = errors.New("jsonobj: no such field")

// decodeIssue builds a single-issue DecodeError at the given path.
func decodeIssue(path, code, msg string) error {
	return &DecodeError{Issues: Issues{{Path: path, Code: code, Message: msg}}}
}

// issuesFromErr converts an error into Issues, wrapping non-Issues with
// CodeParseError.
func issuesFromErr(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if i2, ok := AsIssues(err); ok {
		return i2
	}
	return Issues{{Path: path, Code: CodeParseError, Message: err.Error(), Cause: err}}
}

// fieldIssues attributes a field hook failure to /<key>: issue-carrying errors
// are rebased under the key, anything else becomes a parse issue at the key.
func fieldIssues(key string, err error) Issues {
	if child, ok := AsIssues(err); ok {
		return rebase(key, child)
	}
	return issuesFromErr("/"+key, err)
}

// rebase prefixes child issue paths with /<key> so nested failures point at
// the offending field of the parent mapping.
func rebase(key string, child Issues) Issues {
	base := "/" + key
	out := make(Issues, 0, len(child))
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		out = append(out, Issue{Path: p, Code: it.Code, Message: it.Message, Hint: it.Hint, Cause: it.Cause})
	}
	return out
}
