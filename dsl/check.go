package dsl

import (
	"fmt"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
)

// check is a post-type-check constraint. It returns no issues on success and
// at most one issue (path relative to the node) otherwise.
type check func(v any) skema.Issues

// checks is an append-only list; with never mutates the receiver so nodes
// can share the backing array safely after a copy.
type checks []check

func (cs checks) with(c check) checks {
	out := make(checks, len(cs), len(cs)+1)
	copy(out, cs)
	return append(out, c)
}

// run evaluates every constraint in attachment order and collects issues.
func (cs checks) run(v any) skema.Issues {
	var iss skema.Issues
	for _, c := range cs {
		if got := c(v); len(got) > 0 {
			iss = skema.AppendIssues(iss, got...)
		}
	}
	return iss
}

func newIssue(code, msg string, params map[string]any) skema.Issue {
	return skema.Issue{Code: code, Message: msg, Path: skema.Path{}, Params: params}
}

func fail(code, msg string, params map[string]any) skema.Issues {
	return skema.Issues{newIssue(code, msg, params)}
}

// message returns the caller override when given, otherwise the catalog
// entry for code.
func message(override []string, code string, data map[string]string) string {
	if len(override) > 0 && override[0] != "" {
		return override[0]
	}
	return i18n.T(code, data)
}

func invalidType(expected string, v any) skema.Issues {
	received := describe(v)
	return fail(skema.CodeInvalidType,
		i18n.T(skema.CodeInvalidType, map[string]string{"expected": expected, "received": received}),
		map[string]any{"expected": expected, "received": received})
}

func refineOpt(opts []skema.RefineOpt) skema.RefineOpt {
	var o skema.RefineOpt
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	if o.Code == "" {
		o.Code = skema.CodeCustom
	}
	return o
}

// predicateCheck adapts a boolean predicate: false emits one issue built
// from opt.
func predicateCheck(pred func(any) bool, opts []skema.RefineOpt) check {
	o := refineOpt(opts)
	return func(v any) skema.Issues {
		if pred(v) {
			return nil
		}
		msg := o.Message
		if msg == "" {
			msg = i18n.T(skema.CodeCustom, nil)
		}
		return fail(o.Code, msg, o.Params)
	}
}

// errorCheck adapts an error-returning refinement. Issues (or a single
// Issue) are used verbatim; any other error becomes a one-off message under
// opt.Code.
func errorCheck(fn func(any) error, opts []skema.RefineOpt) check {
	o := refineOpt(opts)
	return func(v any) skema.Issues {
		err := fn(v)
		if err == nil {
			return nil
		}
		if iss, ok := skema.AsIssues(err); ok && len(iss) > 0 {
			return iss
		}
		return fail(o.Code, err.Error(), o.Params)
	}
}

// Failf builds an error for SuperRefine that carries a fully formed issue.
func Failf(code string, params map[string]any, format string, args ...any) error {
	return newIssue(code, fmt.Sprintf(format, args...), params)
}
