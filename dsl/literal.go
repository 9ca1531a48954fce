package dsl

import (
	"context"
	"strings"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
)

// LiteralSchema accepts exactly one value.
type LiteralSchema struct {
	base
	value any
}

// Literal returns a schema that accepts only v. Integers of any Go width
// match each other, but an integer never matches a float.
func Literal(v any) *LiteralSchema { return &LiteralSchema{value: v} }

func (s *LiteralSchema) Kind() skema.Kind { return skema.KindLiteral }

// Value returns the accepted literal.
func (s *LiteralSchema) Value() any { return s.value }

func (s *LiteralSchema) Parse(_ context.Context, v any) (any, error) {
	if !literalEqual(v, s.value) {
		return nil, fail(skema.CodeInvalidLiteral,
			i18n.T(skema.CodeInvalidLiteral, map[string]string{"expected": quote(s.value)}),
			map[string]any{"expected": s.value})
	}
	return finish(v, s.checks.run(v))
}

func (s *LiteralSchema) withCheck(c check) *LiteralSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}

// EnumSchema accepts one string out of a fixed, ordered, non-empty set.
type EnumSchema struct {
	base
	options []string
	index   map[string]struct{}
}

// Enum panics with *skema.SchemaError when called without values.
func Enum(values ...string) *EnumSchema {
	if len(values) == 0 {
		skema.Invalid("Enum", "enum requires at least one value")
	}
	idx := make(map[string]struct{}, len(values))
	for _, v := range values {
		idx[v] = struct{}{}
	}
	return &EnumSchema{options: append([]string(nil), values...), index: idx}
}

func (s *EnumSchema) Kind() skema.Kind { return skema.KindEnum }

// Options returns a copy of the accepted values in declaration order.
func (s *EnumSchema) Options() []string { return append([]string(nil), s.options...) }

func (s *EnumSchema) Parse(_ context.Context, v any) (any, error) {
	str, ok := v.(string)
	if _, member := s.index[str]; !ok || !member {
		quoted := make([]string, len(s.options))
		for i, o := range s.options {
			quoted[i] = quote(o)
		}
		return nil, fail(skema.CodeInvalidEnumValue,
			i18n.T(skema.CodeInvalidEnumValue, map[string]string{"options": strings.Join(quoted, ", ")}),
			map[string]any{"options": s.Options(), "received": v})
	}
	return finish(str, s.checks.run(str))
}

func (s *EnumSchema) withCheck(c check) *EnumSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}
