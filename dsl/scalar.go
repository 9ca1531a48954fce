package dsl

import (
	"context"

	skema "github.com/reoring/skema"
)

// BooleanSchema accepts only Go bools.
type BooleanSchema struct{ base }

// Boolean returns a schema accepting true or false.
func Boolean() *BooleanSchema { return &BooleanSchema{} }

// Bool is an alias of Boolean.
func Bool() *BooleanSchema { return Boolean() }

func (s *BooleanSchema) Kind() skema.Kind { return skema.KindBoolean }

func (s *BooleanSchema) Parse(_ context.Context, v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, invalidType("boolean", v)
	}
	return finish(b, s.checks.run(b))
}

func (s *BooleanSchema) withCheck(c check) *BooleanSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}

// NullSchema accepts only nil.
type NullSchema struct{ base }

func Null() *NullSchema { return &NullSchema{} }

func (s *NullSchema) Kind() skema.Kind { return skema.KindNull }

func (s *NullSchema) Parse(_ context.Context, v any) (any, error) {
	if v != nil {
		return nil, invalidType("null", v)
	}
	return finish(nil, s.checks.run(nil))
}

func (s *NullSchema) withCheck(c check) *NullSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}
