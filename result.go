package skema

import "context"

// ParseResult is the outcome of SafeParse: either a parsed value or a
// non-empty Issues collection, never both.
type ParseResult struct {
	ok     bool
	value  any
	issues Issues
}

// Success builds a successful result.
func Success(v any) ParseResult { return ParseResult{ok: true, value: v} }

// Failure builds a failed result. An empty collection is a programming error.
func Failure(iss Issues) ParseResult {
	if len(iss) == 0 {
		Invalid("Failure", "a validation failure needs at least one issue")
	}
	return ParseResult{issues: append(Issues(nil), iss...)}
}

// OK reports whether parsing succeeded.
func (r ParseResult) OK() bool { return r.ok }

// Value returns the parsed value; nil on failure.
func (r ParseResult) Value() any { return r.value }

// Issues returns a copy of the failure issues; nil on success.
func (r ParseResult) Issues() Issues {
	if r.ok {
		return nil
	}
	return append(Issues(nil), r.issues...)
}

// Err returns the issues as an error, or nil on success.
func (r ParseResult) Err() error {
	if r.ok {
		return nil
	}
	return r.Issues()
}

// SafeParse runs s.Parse and folds the outcome into a ParseResult. Only
// validation failures are captured; a non-Issues error from a custom Schema
// implementation is reported as a single custom issue.
func SafeParse(ctx context.Context, s Schema, v any) ParseResult {
	out, err := s.Parse(ctx, v)
	if err == nil {
		return Success(out)
	}
	if iss, ok := AsIssues(err); ok && len(iss) > 0 {
		return Failure(iss)
	}
	return Failure(Issues{{Code: CodeCustom, Message: err.Error(), Path: Path{}}})
}

// Is reports whether v conforms to s.
func Is(ctx context.Context, s Schema, v any) bool {
	_, err := s.Parse(ctx, v)
	return err == nil
}
