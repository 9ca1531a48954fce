package dsl

import (
	"context"
	"strconv"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
)

// TupleSchema validates a fixed-position prefix, optionally followed by any
// number of elements matching a rest schema.
type TupleSchema struct {
	base
	items []skema.Schema
	rest  skema.Schema
}

func Tuple(items ...skema.Schema) *TupleSchema {
	for _, it := range items {
		requireSchema("Tuple", it)
	}
	return &TupleSchema{items: append([]skema.Schema(nil), items...)}
}

func (s *TupleSchema) Kind() skema.Kind         { return skema.KindTuple }
func (s *TupleSchema) Items() []skema.Schema    { return append([]skema.Schema(nil), s.items...) }
func (s *TupleSchema) RestSchema() skema.Schema { return s.rest }

// Rest allows extra elements after the prefix, each validated by r.
func (s *TupleSchema) Rest(r skema.Schema) *TupleSchema {
	requireSchema("Rest", r)
	c := *s
	c.rest = r
	return &c
}

func (s *TupleSchema) Parse(ctx context.Context, v any) (any, error) {
	seq, ok := asSeq(v)
	if !ok {
		return nil, invalidType("array", v)
	}
	want, got := len(s.items), len(seq)
	if (s.rest == nil && got != want) || got < want {
		kind := ""
		if s.rest != nil {
			kind = "rest"
		}
		text := i18n.T(skema.CodeInvalidTupleLength, map[string]string{
			"kind": kind, "expected": strconv.Itoa(want), "received": strconv.Itoa(got),
		})
		return nil, fail(skema.CodeInvalidTupleLength, text, map[string]any{"expected": want, "received": got})
	}
	var iss skema.Issues
	out := make([]any, got)
	for i, el := range seq {
		elem := s.rest
		if i < want {
			elem = s.items[i]
		}
		parsed, eiss := run(ctx, elem, el)
		if eiss != nil {
			iss = skema.AppendIssues(iss, eiss.Prefix(i)...)
			continue
		}
		out[i] = parsed
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return finish(out, s.checks.run(out))
}

func (s *TupleSchema) withCheck(c check) *TupleSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}
