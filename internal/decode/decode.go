// Package decode turns JSON and YAML bytes into the in-memory value trees
// that schema nodes parse: nil, bool, string, int64, float64, []any and
// map[string]any. It enforces duplicate-key, depth and size limits while
// building the tree.
package decode

import (
	"errors"
	"fmt"
)

// DupMode selects duplicate object key handling.
type DupMode int

const (
	DupIgnore DupMode = iota
	DupWarn
	DupError
)

// Limits controls runtime enforcement while decoding.
type Limits struct {
	MaxDepth int
	MaxBytes int64
	OnDup    DupMode
}

// Problem is a lightweight issue produced while decoding. The root package
// converts problems into Issues.
type Problem struct {
	Code    string
	Path    []any
	Message string
	Warning bool
}

const (
	codeParseError   = "parse_error"
	codeDuplicateKey = "duplicate_key"
	codeTruncated    = "truncated"
)

// errAbort stops decoding after a fatal problem has been recorded.
var errAbort = errors.New("decode: aborted")

type tracker struct {
	lim      Limits
	problems []Problem
}

func (t *tracker) fatal(code string, path []any, format string, args ...any) error {
	t.problems = append(t.problems, Problem{Code: code, Path: clonePath(path), Message: fmt.Sprintf(format, args...)})
	return errAbort
}

func (t *tracker) enter(path []any, depth int) error {
	if t.lim.MaxDepth > 0 && depth > t.lim.MaxDepth {
		return t.fatal(codeTruncated, path, "max depth %d exceeded", t.lim.MaxDepth)
	}
	return nil
}

func (t *tracker) duplicate(path []any, key string) {
	switch t.lim.OnDup {
	case DupError:
		t.problems = append(t.problems, Problem{Code: codeDuplicateKey, Path: append(clonePath(path), key), Message: fmt.Sprintf("duplicate key '%s'", key)})
	case DupWarn:
		t.problems = append(t.problems, Problem{Code: codeDuplicateKey, Path: append(clonePath(path), key), Message: fmt.Sprintf("duplicate key '%s'", key), Warning: true})
	}
}

// failed reports whether any non-warning problem was recorded.
func (t *tracker) failed() bool {
	for _, p := range t.problems {
		if !p.Warning {
			return true
		}
	}
	return false
}

func clonePath(p []any) []any {
	return append(make([]any, 0, len(p)+1), p...)
}
