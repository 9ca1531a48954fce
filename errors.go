package skema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes emitted by schema nodes. The set is stable and forms the wire
// vocabulary for error consumers.
const (
	CodeInvalidType        = "invalid_type"
	CodeTooSmall           = "too_small"
	CodeTooBig             = "too_big"
	CodeInvalidArrayLength = "invalid_array_length"
	CodeInvalidTupleLength = "invalid_tuple_length"
	CodeMissingRequired    = "missing_required"
	CodeUnrecognizedKey    = "unrecognized_key"
	CodeInvalidEnumValue   = "invalid_enum_value"
	CodeInvalidLiteral     = "invalid_literal"
	CodeInvalidString      = "invalid_string"
	CodeNotMultipleOf      = "not_multiple_of"
	CodeNotFinite          = "not_finite"
	CodeInvalidUnion       = "invalid_union"
	CodeCustom             = "custom"
)

// Codes produced by the byte-level front doors (ParseJSON, ParseYAML) before
// any node runs.
const (
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeTruncated    = "truncated"
)

// Issue represents a single validation failure. Path is relative to the node
// that raised it; containers prepend their own key or index when re-raising.
type Issue struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Path    Path           `json:"path"`
	Params  map[string]any `json:"params,omitempty"`
}

// WithPrefix returns a copy of the issue with seg prepended to its path.
func (it Issue) WithPrefix(seg any) Issue {
	p := make(Path, 0, len(it.Path)+1)
	p = append(p, seg)
	p = append(p, it.Path...)
	it.Path = p
	return it
}

// Error lets a single Issue travel through error-returning refinements.
func (it Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", it.Code, it.Path.Pointer(), it.Message)
}

// Issues is an ordered, non-empty collection of validation failures. It is
// the error value returned by every Parse call that fails.
type Issues []Issue

// ValidationError names the failure unit of a parse.
type ValidationError = Issues

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /items/1/name
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path.Pointer())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Prefix returns a new collection with seg prepended to every issue path.
func (iss Issues) Prefix(seg any) Issues {
	if len(iss) == 0 {
		return nil
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		out[i] = it.WithPrefix(seg)
	}
	return out
}

// Codes lists issue codes in order; handy in tests and logs.
func (iss Issues) Codes() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Code
	}
	return out
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

// AsIssues extracts Issues from an error using errors.As internally. A bare
// Issue error is lifted into a one-element collection.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	var one Issue
	if errors.As(err, &one) {
		return Issues{one}, true
	}
	return nil, false
}

// IssueAt creates an Issue at the given path with provided code, message and params map.
func IssueAt(p Path, code, msg string, params map[string]any) Issue {
	return Issue{Path: p, Code: code, Message: msg, Params: params}
}

var (
	// ErrInvalidSchema marks programmer errors in schema construction or lazy
	// resolution. These surface as panics carrying a *SchemaError and are never
	// folded into Issues.
	ErrInvalidSchema = errors.New("skema: invalid schema")
	// ErrNoDefault is returned by DefaultValue when HasDefault is false.
	ErrNoDefault = errors.New("skema: schema does not define a default value")
	// ErrLazyExport is returned when exporting a tree that contains a lazy node.
	ErrLazyExport = errors.New("skema: lazy schemas cannot be exported")
)

// SchemaError describes a malformed schema. It wraps ErrInvalidSchema.
type SchemaError struct {
	Op     string
	Reason string
}

func (e *SchemaError) Error() string {
	return "skema: " + e.Op + ": " + e.Reason
}

func (e *SchemaError) Unwrap() error { return ErrInvalidSchema }

// Invalid panics with a *SchemaError. Node constructors call it for
// conditions such as an empty enum or a zero multipleOf divisor.
func Invalid(op, format string, args ...any) {
	panic(&SchemaError{Op: op, Reason: fmt.Sprintf(format, args...)})
}
