package dsl

import (
	"context"
	"reflect"

	skema "github.com/reoring/skema"
)

// base carries the constraint list and the "plain node" answers to the
// presence queries. Wrappers that change presence override them.
type base struct {
	checks checks
}

func (base) IsOptionalLike() bool       { return false }
func (base) HasDefault() bool           { return false }
func (base) DefaultValue() (any, error) { return nil, skema.ErrNoDefault }

// finish turns accumulated issues into the Parse return pair.
func finish(v any, iss skema.Issues) (any, error) {
	if len(iss) > 0 {
		return nil, iss
	}
	return v, nil
}

// run parses v with a child node and normalizes the error into Issues so
// containers can prefix and merge them. Errors that are not Issues come from
// foreign Schema implementations and are folded into one custom issue.
func run(ctx context.Context, s skema.Schema, v any) (any, skema.Issues) {
	out, err := s.Parse(ctx, v)
	if err == nil {
		return out, nil
	}
	if iss, ok := skema.AsIssues(err); ok && len(iss) > 0 {
		return nil, iss
	}
	return nil, fail(skema.CodeCustom, err.Error(), nil)
}

// defaultOf returns the default of s when it has one.
func defaultOf(s skema.Schema) (any, bool, error) {
	if !s.HasDefault() {
		return nil, false, nil
	}
	v, err := s.DefaultValue()
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func requireSchema(op string, s skema.Schema) {
	if isNil(s) {
		skema.Invalid(op, "schema must not be nil")
	}
}

// isNil also catches a nil pointer stored in the interface.
func isNil(s skema.Schema) bool {
	if s == nil {
		return true
	}
	switch v := reflect.ValueOf(s); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
