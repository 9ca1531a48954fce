package dsl

import (
	"context"
	"sort"

	skema "github.com/reoring/skema"
)

// RecordSchema validates a map with one value schema and an optional key
// schema.
type RecordSchema struct {
	base
	key   skema.Schema
	value skema.Schema
}

// Record accepts any string keys.
func Record(value skema.Schema) *RecordSchema {
	requireSchema("Record", value)
	return &RecordSchema{value: value}
}

// RecordOf also validates every key (as a string) with key.
func RecordOf(key, value skema.Schema) *RecordSchema {
	requireSchema("Record", key)
	requireSchema("Record", value)
	return &RecordSchema{key: key, value: value}
}

func (s *RecordSchema) Kind() skema.Kind          { return skema.KindRecord }
func (s *RecordSchema) KeySchema() skema.Schema   { return s.key }
func (s *RecordSchema) ValueSchema() skema.Schema { return s.value }

// Parse checks entries in sorted key order. A rejected key does not stop
// its value from being validated; both sets of issues are reported under
// the key. The result keeps the original keys.
func (s *RecordSchema) Parse(ctx context.Context, v any) (any, error) {
	in, ok := asMap(v)
	if !ok {
		return nil, invalidType("object", v)
	}
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var iss skema.Issues
	out := make(map[string]any, len(in))
	for _, k := range keys {
		if s.key != nil {
			if _, kiss := run(ctx, s.key, k); kiss != nil {
				iss = skema.AppendIssues(iss, kiss.Prefix(k)...)
			}
		}
		parsed, viss := run(ctx, s.value, in[k])
		if viss != nil {
			iss = skema.AppendIssues(iss, viss.Prefix(k)...)
			continue
		}
		out[k] = parsed
	}
	iss = skema.AppendIssues(iss, s.checks.run(out)...)
	return finish(out, iss)
}

func (s *RecordSchema) withCheck(c check) *RecordSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}
