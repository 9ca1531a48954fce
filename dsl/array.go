package dsl

import (
	"context"
	"strconv"

	skema "github.com/reoring/skema"
)

// ArraySchema validates every element of a sequence with one schema.
type ArraySchema struct {
	base
	elem           skema.Schema
	minN, maxN     int
	hasMin, hasMax bool
}

func Array(elem skema.Schema) *ArraySchema {
	requireSchema("Array", elem)
	return &ArraySchema{elem: elem}
}

func (s *ArraySchema) Kind() skema.Kind      { return skema.KindArray }
func (s *ArraySchema) Element() skema.Schema { return s.elem }
func (s *ArraySchema) MinItems() (int, bool) { return s.minN, s.hasMin }
func (s *ArraySchema) MaxItems() (int, bool) { return s.maxN, s.hasMax }

// Parse visits every element and reports all failures with the index
// prepended. Length checks then run against the original input.
func (s *ArraySchema) Parse(ctx context.Context, v any) (any, error) {
	seq, ok := asSeq(v)
	if !ok {
		return nil, invalidType("array", v)
	}
	var iss skema.Issues
	out := make([]any, len(seq))
	for i, el := range seq {
		parsed, eiss := run(ctx, s.elem, el)
		if eiss != nil {
			iss = skema.AppendIssues(iss, eiss.Prefix(i)...)
			continue
		}
		out[i] = parsed
	}
	iss = skema.AppendIssues(iss, s.checks.run(seq)...)
	return finish(out, iss)
}

func (s *ArraySchema) Min(n int, msg ...string) *ArraySchema {
	c := *s
	c.tighten(n, -1)
	text := message(msg, skema.CodeTooSmall, map[string]string{"kind": "array", "minimum": strconv.Itoa(n)})
	c.checks = c.checks.with(func(v any) skema.Issues {
		if seq, _ := asSeq(v); len(seq) >= n {
			return nil
		}
		return fail(skema.CodeTooSmall, text, map[string]any{"minimum": n, "type": "array"})
	})
	return &c
}

func (s *ArraySchema) Max(n int, msg ...string) *ArraySchema {
	c := *s
	c.tighten(-1, n)
	text := message(msg, skema.CodeTooBig, map[string]string{"kind": "array", "maximum": strconv.Itoa(n)})
	c.checks = c.checks.with(func(v any) skema.Issues {
		if seq, _ := asSeq(v); len(seq) <= n {
			return nil
		}
		return fail(skema.CodeTooBig, text, map[string]any{"maximum": n, "type": "array"})
	})
	return &c
}

// Length requires exactly n elements; it tightens both bounds.
func (s *ArraySchema) Length(n int, msg ...string) *ArraySchema {
	c := *s
	c.tighten(n, n)
	text := message(msg, skema.CodeInvalidArrayLength, map[string]string{"expected": strconv.Itoa(n)})
	c.checks = c.checks.with(func(v any) skema.Issues {
		if seq, _ := asSeq(v); len(seq) == n {
			return nil
		}
		return fail(skema.CodeInvalidArrayLength, text, map[string]any{"expected": n})
	})
	return &c
}

func (s *ArraySchema) NonEmpty(msg ...string) *ArraySchema { return s.Min(1, msg...) }

// tighten records bounds; a negative argument leaves that side alone.
func (s *ArraySchema) tighten(lo, hi int) {
	if lo >= 0 && (!s.hasMin || lo > s.minN) {
		s.minN, s.hasMin = lo, true
	}
	if hi >= 0 && (!s.hasMax || hi < s.maxN) {
		s.maxN, s.hasMax = hi, true
	}
}

func (s *ArraySchema) withCheck(c check) *ArraySchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}
