package dsl

import (
	"context"
	"sort"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
)

// UnknownPolicy decides what happens to input keys that are not in the
// shape.
type UnknownPolicy int

const (
	// UnknownStrip drops unknown keys from the result.
	UnknownStrip UnknownPolicy = iota
	// UnknownPassthrough copies unknown keys into the result unchanged.
	UnknownPassthrough
	// UnknownStrict reports each unknown key as unrecognized_key.
	UnknownStrict
)

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownPassthrough:
		return "passthrough"
	case UnknownStrict:
		return "strict"
	default:
		return "strip"
	}
}

// Field is one declared property of an object shape.
type Field struct {
	Name   string
	Schema skema.Schema
}

// Prop builds a Field.
func Prop(name string, s skema.Schema) Field { return Field{Name: name, Schema: s} }

// ObjectSchema validates a map against a fixed, ordered shape.
type ObjectSchema struct {
	base
	fields []Field
	index  map[string]int
	policy UnknownPolicy
}

// Object declares a shape in the given order.
func Object(fields ...Field) *ObjectSchema {
	return (&ObjectSchema{}).Extend(fields...)
}

// ObjectOf declares a shape from a map; keys are ordered lexically.
func ObjectOf(shape map[string]skema.Schema) *ObjectSchema {
	names := make([]string, 0, len(shape))
	for k := range shape {
		names = append(names, k)
	}
	sort.Strings(names)
	fields := make([]Field, len(names))
	for i, k := range names {
		fields[i] = Field{Name: k, Schema: shape[k]}
	}
	return Object(fields...)
}

// Field adds or replaces one property.
func (s *ObjectSchema) Field(name string, fs skema.Schema) *ObjectSchema {
	return s.Extend(Field{Name: name, Schema: fs})
}

// Extend merges fields into the shape. A redefined key keeps its position
// and takes the new schema; new keys are appended.
func (s *ObjectSchema) Extend(fields ...Field) *ObjectSchema {
	c := *s
	c.fields = append([]Field(nil), s.fields...)
	c.index = make(map[string]int, len(s.fields)+len(fields))
	for i, f := range c.fields {
		c.index[f.Name] = i
	}
	for _, f := range fields {
		requireSchema("Object", f.Schema)
		if i, ok := c.index[f.Name]; ok {
			c.fields[i] = f
			continue
		}
		c.index[f.Name] = len(c.fields)
		c.fields = append(c.fields, f)
	}
	return &c
}

func (s *ObjectSchema) Strip() *ObjectSchema       { return s.withPolicy(UnknownStrip) }
func (s *ObjectSchema) Passthrough() *ObjectSchema { return s.withPolicy(UnknownPassthrough) }
func (s *ObjectSchema) Strict() *ObjectSchema      { return s.withPolicy(UnknownStrict) }

func (s *ObjectSchema) withPolicy(p UnknownPolicy) *ObjectSchema {
	c := *s
	c.policy = p
	return &c
}

func (s *ObjectSchema) Kind() skema.Kind             { return skema.KindObject }
func (s *ObjectSchema) UnknownPolicy() UnknownPolicy { return s.policy }
func (s *ObjectSchema) Shape() []Field               { return append([]Field(nil), s.fields...) }

func (s *ObjectSchema) Keys() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}

// Lookup returns the schema declared for name.
func (s *ObjectSchema) Lookup(name string) (skema.Schema, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i].Schema, true
}

// Parse walks the shape in declaration order, then applies the unknown-key
// policy in sorted key order, then runs object checks on the result.
func (s *ObjectSchema) Parse(ctx context.Context, v any) (any, error) {
	in, ok := asMap(v)
	if !ok {
		return nil, invalidType("object", v)
	}
	var iss skema.Issues
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		raw, present := in[f.Name]
		if present {
			parsed, fiss := run(ctx, f.Schema, raw)
			if fiss != nil {
				iss = skema.AppendIssues(iss, fiss.Prefix(f.Name)...)
				continue
			}
			out[f.Name] = parsed
			continue
		}
		if f.Schema.IsOptionalLike() {
			d, has, err := defaultOf(f.Schema)
			if err != nil {
				iss = append(iss, skema.IssueAt(skema.Path{f.Name}, skema.CodeCustom, err.Error(), nil))
			} else if has {
				out[f.Name] = d
			}
			continue
		}
		iss = append(iss, skema.IssueAt(skema.Path{f.Name}, skema.CodeMissingRequired,
			i18n.T(skema.CodeMissingRequired, map[string]string{"key": f.Name}),
			map[string]any{"key": f.Name}))
	}

	var unknown []string
	for k := range in {
		if _, declared := s.index[k]; !declared {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		switch s.policy {
		case UnknownPassthrough:
			out[k] = in[k]
		case UnknownStrict:
			iss = append(iss, skema.IssueAt(skema.Path{k}, skema.CodeUnrecognizedKey,
				i18n.T(skema.CodeUnrecognizedKey, map[string]string{"key": k}),
				map[string]any{"key": k}))
		}
	}

	iss = skema.AppendIssues(iss, s.checks.run(out)...)
	return finish(out, iss)
}

func (s *ObjectSchema) withCheck(c check) *ObjectSchema {
	cp := *s
	cp.checks = cp.checks.with(c)
	return &cp
}
