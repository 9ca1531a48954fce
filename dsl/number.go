package dsl

import (
	"context"
	"math"

	skema "github.com/reoring/skema"
)

// NumberSchema accepts every Go numeric kind and json.Number. The parsed
// value is returned unchanged, so int64 input stays int64.
type NumberSchema struct {
	base
	isInt    bool
	intMsg   string
	min, max *float64
	exMin    *float64
	exMax    *float64
	multiple *float64
}

// Number returns a schema accepting any number, including NaN and ±Inf.
func Number() *NumberSchema { return &NumberSchema{} }

func (s *NumberSchema) Kind() skema.Kind { return skema.KindNumber }

func (s *NumberSchema) Parse(_ context.Context, v any) (any, error) {
	if _, ok := toFloat(v); !ok {
		return nil, invalidType("number", v)
	}
	if s.isInt && !isInteger(v) {
		return nil, fail(skema.CodeInvalidType, s.intMsg, map[string]any{"expected": "integer", "received": describe(v)})
	}
	return finish(v, s.checks.run(v))
}

// Int requires an integer kind. Floats are rejected even when integral. A
// mismatch is a type error, so no other constraint runs after it.
func (s *NumberSchema) Int(msg ...string) *NumberSchema {
	c := *s
	c.isInt = true
	c.intMsg = message(msg, skema.CodeInvalidType, map[string]string{"kind": "integer"})
	return &c
}

// Min is an inclusive lower bound.
func (s *NumberSchema) Min(x float64, msg ...string) *NumberSchema {
	c := *s
	if c.min == nil || x > *c.min {
		c.min = &x
	}
	c.checks = c.checks.with(lowerCheck(x, false, msg))
	return &c
}

// Max is an inclusive upper bound.
func (s *NumberSchema) Max(x float64, msg ...string) *NumberSchema {
	c := *s
	if c.max == nil || x < *c.max {
		c.max = &x
	}
	c.checks = c.checks.with(upperCheck(x, false, msg))
	return &c
}

func (s *NumberSchema) Gte(x float64, msg ...string) *NumberSchema { return s.Min(x, msg...) }
func (s *NumberSchema) Lte(x float64, msg ...string) *NumberSchema { return s.Max(x, msg...) }

// Gt is an exclusive lower bound.
func (s *NumberSchema) Gt(x float64, msg ...string) *NumberSchema {
	c := *s
	if c.exMin == nil || x > *c.exMin {
		c.exMin = &x
	}
	c.checks = c.checks.with(lowerCheck(x, true, msg))
	return &c
}

// Lt is an exclusive upper bound.
func (s *NumberSchema) Lt(x float64, msg ...string) *NumberSchema {
	c := *s
	if c.exMax == nil || x < *c.exMax {
		c.exMax = &x
	}
	c.checks = c.checks.with(upperCheck(x, true, msg))
	return &c
}

// Positive requires v > 0. It replaces any inclusive minimum.
func (s *NumberSchema) Positive(msg ...string) *NumberSchema {
	c := *s
	zero := 0.0
	c.exMin, c.min = &zero, nil
	c.checks = c.checks.with(lowerCheck(0, true, msg))
	return &c
}

// Nonnegative requires v >= 0. It replaces any exclusive minimum.
func (s *NumberSchema) Nonnegative(msg ...string) *NumberSchema {
	c := *s
	zero := 0.0
	c.min, c.exMin = &zero, nil
	c.checks = c.checks.with(lowerCheck(0, false, msg))
	return &c
}

// Negative requires v < 0. It replaces any inclusive maximum.
func (s *NumberSchema) Negative(msg ...string) *NumberSchema {
	c := *s
	zero := 0.0
	c.exMax, c.max = &zero, nil
	c.checks = c.checks.with(upperCheck(0, true, msg))
	return &c
}

// Nonpositive requires v <= 0. It replaces any exclusive maximum.
func (s *NumberSchema) Nonpositive(msg ...string) *NumberSchema {
	c := *s
	zero := 0.0
	c.max, c.exMax = &zero, nil
	c.checks = c.checks.with(upperCheck(0, false, msg))
	return &c
}

// MultipleOf requires v/m to be integral within 1e-9. m must be non-zero.
func (s *NumberSchema) MultipleOf(m float64, msg ...string) *NumberSchema {
	if m == 0 {
		skema.Invalid("MultipleOf", "divisor must be non-zero")
	}
	c := *s
	c.multiple = &m
	text := message(msg, skema.CodeNotMultipleOf, map[string]string{"multiple": formatNumber(m)})
	c.checks = c.checks.with(func(v any) skema.Issues {
		f, _ := toFloat(v)
		q := f / m
		if isFinite(q) && math.Abs(q-math.Round(q)) <= 1e-9 {
			return nil
		}
		return fail(skema.CodeNotMultipleOf, text, map[string]any{"multiple": m})
	})
	return &c
}

// Finite rejects NaN and ±Inf.
func (s *NumberSchema) Finite(msg ...string) *NumberSchema {
	c := *s
	text := message(msg, skema.CodeNotFinite, nil)
	c.checks = c.checks.with(func(v any) skema.Issues {
		if f, _ := toFloat(v); isFinite(f) {
			return nil
		}
		return fail(skema.CodeNotFinite, text, nil)
	})
	return &c
}

func (s *NumberSchema) IsInt() bool                       { return s.isInt }
func (s *NumberSchema) Minimum() (float64, bool)          { return deref(s.min) }
func (s *NumberSchema) Maximum() (float64, bool)          { return deref(s.max) }
func (s *NumberSchema) ExclusiveMinimum() (float64, bool) { return deref(s.exMin) }
func (s *NumberSchema) ExclusiveMaximum() (float64, bool) { return deref(s.exMax) }
func (s *NumberSchema) MultipleOfValue() (float64, bool)  { return deref(s.multiple) }

func (s *NumberSchema) withCheck(c check) *NumberSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}

func deref(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

func lowerCheck(x float64, exclusive bool, msg []string) check {
	kind := "number"
	if exclusive {
		kind = "number_exclusive"
	}
	text := message(msg, skema.CodeTooSmall, map[string]string{"kind": kind, "minimum": formatNumber(x)})
	params := map[string]any{"minimum": x, "type": "number"}
	if exclusive {
		params["exclusive"] = true
	}
	return func(v any) skema.Issues {
		f, _ := toFloat(v)
		if math.IsNaN(f) || f > x || (!exclusive && f == x) {
			return nil
		}
		return fail(skema.CodeTooSmall, text, params)
	}
}

func upperCheck(x float64, exclusive bool, msg []string) check {
	kind := "number"
	if exclusive {
		kind = "number_exclusive"
	}
	text := message(msg, skema.CodeTooBig, map[string]string{"kind": kind, "maximum": formatNumber(x)})
	params := map[string]any{"maximum": x, "type": "number"}
	if exclusive {
		params["exclusive"] = true
	}
	return func(v any) skema.Issues {
		f, _ := toFloat(v)
		if math.IsNaN(f) || f < x || (!exclusive && f == x) {
			return nil
		}
		return fail(skema.CodeTooBig, text, params)
	}
}
