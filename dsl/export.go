package dsl

import (
	"fmt"

	skema "github.com/reoring/skema"
	js "github.com/reoring/skema/jsonschema"
)

// meta is collected while peeling wrappers off a node.
type meta struct {
	nullable   bool
	optional   bool
	hasDefault bool
	def        any
}

// unwrapper is implemented by wrappers that are transparent to export.
// Each call records its own metadata and returns the next node inward.
type unwrapper interface {
	unwrap(m *meta) skema.Schema
}

// describer renders an unwrapped core node.
type describer interface {
	describe() (*js.Schema, error)
}

// Export renders s as a JSON Schema descriptor. Wrappers are peeled first:
// Nullable widens the result, Optional and Default mark the node
// omittable, and the innermost Default provides "default". Transform and
// Preprocess are transparent. Lazy nodes fail with skema.ErrLazyExport.
func Export(s skema.Schema) (*js.Schema, error) {
	out, _, err := exportMeta(s)
	return out, err
}

// ExportDescriptor renders s as a plain map using JSON Schema keywords.
func ExportDescriptor(s skema.Schema) (map[string]any, error) {
	out, err := Export(s)
	if err != nil {
		return nil, err
	}
	return out.Map(), nil
}

func exportMeta(s skema.Schema) (*js.Schema, meta, error) {
	var m meta
	core := s
	for {
		u, ok := core.(unwrapper)
		if !ok {
			break
		}
		core = u.unwrap(&m)
	}
	if core.IsOptionalLike() {
		m.optional = true
	}
	if !m.hasDefault && core.HasDefault() {
		d, err := core.DefaultValue()
		if err != nil {
			return nil, m, err
		}
		m.hasDefault, m.def = true, d
	}

	var out *js.Schema
	var err error
	if d, ok := core.(describer); ok {
		out, err = d.describe()
	} else {
		out, err = core.JSONSchema()
	}
	if err != nil {
		return nil, m, err
	}
	if out == nil {
		return nil, m, fmt.Errorf("skema: export %s: empty descriptor", core.Kind())
	}
	if m.nullable {
		out = out.WithNull()
	}
	if m.hasDefault {
		cp := *out
		cp.Default, cp.HasDefault = m.def, true
		out = &cp
	}
	return out, m, nil
}

func exportAll(in []skema.Schema) ([]*js.Schema, error) {
	out := make([]*js.Schema, len(in))
	for i, s := range in {
		d, err := Export(s)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

func (s *StringSchema) describe() (*js.Schema, error) {
	out := &js.Schema{Type: "string", Pattern: s.pattern, Format: s.format}
	if s.hasMin {
		out.MinLength = js.Int(s.minLen)
	}
	if s.hasMax {
		out.MaxLength = js.Int(s.maxLen)
	}
	return out, nil
}

func (s *NumberSchema) describe() (*js.Schema, error) {
	out := &js.Schema{Type: "number"}
	if s.isInt {
		out.Type = "integer"
	}
	out.Minimum, out.Maximum = s.min, s.max
	out.ExclusiveMinimum, out.ExclusiveMaximum = s.exMin, s.exMax
	out.MultipleOf = s.multiple
	return out, nil
}

func (s *BooleanSchema) describe() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }
func (s *NullSchema) describe() (*js.Schema, error)    { return &js.Schema{Type: "null"}, nil }

func (s *LiteralSchema) describe() (*js.Schema, error) {
	typ := "string"
	switch {
	case s.value == nil:
		typ = "null"
	case isInteger(s.value):
		typ = "integer"
	default:
		if _, ok := s.value.(bool); ok {
			typ = "boolean"
		} else if _, ok := toFloat(s.value); ok {
			typ = "number"
		}
	}
	return &js.Schema{Type: typ, Enum: []any{s.value}}, nil
}

func (s *EnumSchema) describe() (*js.Schema, error) {
	enum := make([]any, len(s.options))
	for i, o := range s.options {
		enum[i] = o
	}
	return &js.Schema{Type: "string", Enum: enum}, nil
}

func (s *AnySchema) describe() (*js.Schema, error)   { return &js.Schema{}, nil }
func (s *NeverSchema) describe() (*js.Schema, error) { return &js.Schema{Not: &js.Schema{}}, nil }

func (s *ArraySchema) describe() (*js.Schema, error) {
	items, err := Export(s.elem)
	if err != nil {
		return nil, err
	}
	out := &js.Schema{Type: "array", Items: items}
	if s.hasMin {
		out.MinItems = js.Int(s.minN)
	}
	if s.hasMax {
		out.MaxItems = js.Int(s.maxN)
	}
	return out, nil
}

func (s *TupleSchema) describe() (*js.Schema, error) {
	out := &js.Schema{Type: "array"}
	if len(s.items) > 0 {
		prefix, err := exportAll(s.items)
		if err != nil {
			return nil, err
		}
		out.PrefixItems = prefix
		out.MinItems = js.Int(len(prefix))
		if s.rest == nil {
			out.MaxItems = js.Int(len(prefix))
		}
	}
	if s.rest != nil {
		rest, err := Export(s.rest)
		if err != nil {
			return nil, err
		}
		out.Items = rest
	}
	return out, nil
}

// describe lists required keys in declaration order. Only passthrough
// objects admit additional properties.
func (s *ObjectSchema) describe() (*js.Schema, error) {
	out := &js.Schema{
		Type:                 "object",
		Properties:           make(map[string]*js.Schema, len(s.fields)),
		AdditionalProperties: s.policy == UnknownPassthrough,
	}
	for _, f := range s.fields {
		prop, m, err := exportMeta(f.Schema)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", f.Name, err)
		}
		out.Properties[f.Name] = prop
		if !m.optional {
			out.Required = append(out.Required, f.Name)
		}
	}
	return out, nil
}

func (s *RecordSchema) describe() (*js.Schema, error) {
	value, err := Export(s.value)
	if err != nil {
		return nil, err
	}
	out := &js.Schema{Type: "object", AdditionalProperties: value}
	if s.key != nil {
		if out.PropertyNames, err = Export(s.key); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *UnionSchema) describe() (*js.Schema, error) {
	options, err := exportAll(s.options)
	if err != nil {
		return nil, err
	}
	return &js.Schema{AnyOf: options}, nil
}

func (s *IntersectionSchema) describe() (*js.Schema, error) {
	all, err := exportAll([]skema.Schema{s.left, s.right})
	if err != nil {
		return nil, err
	}
	return &js.Schema{AllOf: all}, nil
}
