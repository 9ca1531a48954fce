// Package jsonschema holds the descriptor model produced by schema export.
// Field names follow the JSON Schema vocabulary exactly so descriptors can be
// consumed by external JSON Schema tooling.
package jsonschema

import (
	j "github.com/goccy/go-json"
)

// Schema is a JSON Schema descriptor. Type is either a string or a []string
// (for nullable widening). AdditionalProperties is either a bool or *Schema.
type Schema struct {
	// Core
	Type    any     `json:"type,omitempty"`
	Format  string  `json:"format,omitempty"`
	Pattern string  `json:"pattern,omitempty"`
	Enum    []any   `json:"enum,omitempty"`
	Not     *Schema `json:"not,omitempty"`

	// Default is rendered only when HasDefault is set, so a nil default
	// survives export.
	Default    any  `json:"default,omitempty"`
	HasDefault bool `json:"-"`

	// String
	MinLength *int `json:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty"`

	// Number
	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	PropertyNames        *Schema            `json:"propertyNames,omitempty"`

	// Array
	Items       *Schema   `json:"items,omitempty"`
	PrefixItems []*Schema `json:"prefixItems,omitempty"`
	MinItems    *int      `json:"minItems,omitempty"`
	MaxItems    *int      `json:"maxItems,omitempty"`

	// Composition
	AnyOf []*Schema `json:"anyOf,omitempty"`
	AllOf []*Schema `json:"allOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Int and Float return pointers for the optional bound fields.
func Int(n int) *int           { return &n }
func Float(f float64) *float64 { return &f }

// TypeNames returns the declared type as a list (nil when unset).
func (s *Schema) TypeNames() []string {
	switch t := s.Type.(type) {
	case string:
		return []string{t}
	case []string:
		return append([]string(nil), t...)
	case []any:
		out := make([]string, 0, len(t))
		for _, v := range t {
			if str, ok := v.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// WithNull returns a copy that also admits null. Enums gain a null member;
// anyOf/oneOf gain a null branch; otherwise the type widens to include
// "null", and an untyped descriptor becomes ["null"].
func (s *Schema) WithNull() *Schema {
	c := *s
	if len(c.Enum) > 0 && !containsNil(c.Enum) {
		c.Enum = append(append([]any(nil), c.Enum...), nil)
	}
	switch {
	case c.AnyOf != nil:
		c.AnyOf = append(append([]*Schema(nil), c.AnyOf...), &Schema{Type: "null"})
		return &c
	case c.OneOf != nil:
		c.OneOf = append(append([]*Schema(nil), c.OneOf...), &Schema{Type: "null"})
		return &c
	}
	if c.Type == nil {
		c.Type = []string{"null"}
		return &c
	}
	if t, ok := c.Type.(string); ok {
		if t != "null" {
			c.Type = []string{t, "null"}
		}
		return &c
	}
	names := c.TypeNames()
	for _, n := range names {
		if n == "null" {
			c.Type = names
			return &c
		}
	}
	c.Type = append(names, "null")
	return &c
}

func containsNil(vs []any) bool {
	for _, v := range vs {
		if v == nil {
			return true
		}
	}
	return false
}

// Map renders the descriptor as a plain map using JSON Schema keywords.
func (s *Schema) Map() map[string]any {
	if s == nil {
		return nil
	}
	m := map[string]any{}
	if s.Type != nil {
		if names := s.TypeNames(); len(names) == 1 {
			if _, single := s.Type.(string); single {
				m["type"] = names[0]
			} else {
				m["type"] = toAnySlice(names)
			}
		} else {
			m["type"] = toAnySlice(names)
		}
	}
	if s.Format != "" {
		m["format"] = s.Format
	}
	if s.Pattern != "" {
		m["pattern"] = s.Pattern
	}
	if s.Enum != nil {
		m["enum"] = append([]any(nil), s.Enum...)
	}
	if s.Not != nil {
		m["not"] = s.Not.Map()
	}
	if s.HasDefault {
		m["default"] = s.Default
	}
	putInt(m, "minLength", s.MinLength)
	putInt(m, "maxLength", s.MaxLength)
	putFloat(m, "minimum", s.Minimum)
	putFloat(m, "maximum", s.Maximum)
	putFloat(m, "exclusiveMinimum", s.ExclusiveMinimum)
	putFloat(m, "exclusiveMaximum", s.ExclusiveMaximum)
	putFloat(m, "multipleOf", s.MultipleOf)
	if s.Properties != nil {
		props := make(map[string]any, len(s.Properties))
		for k, v := range s.Properties {
			props[k] = v.Map()
		}
		m["properties"] = props
	}
	if len(s.Required) > 0 {
		m["required"] = toAnySlice(s.Required)
	}
	switch ap := s.AdditionalProperties.(type) {
	case bool:
		m["additionalProperties"] = ap
	case *Schema:
		m["additionalProperties"] = ap.Map()
	}
	if s.PropertyNames != nil {
		m["propertyNames"] = s.PropertyNames.Map()
	}
	if s.Items != nil {
		m["items"] = s.Items.Map()
	}
	if s.PrefixItems != nil {
		m["prefixItems"] = mapList(s.PrefixItems)
	}
	putInt(m, "minItems", s.MinItems)
	putInt(m, "maxItems", s.MaxItems)
	if s.AnyOf != nil {
		m["anyOf"] = mapList(s.AnyOf)
	}
	if s.AllOf != nil {
		m["allOf"] = mapList(s.AllOf)
	}
	if s.OneOf != nil {
		m["oneOf"] = mapList(s.OneOf)
	}
	return m
}

// MarshalJSON renders through Map so that defaults (including null) and
// additionalProperties=false are preserved.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return j.Marshal(s.Map())
}

func putInt(m map[string]any, k string, v *int) {
	if v != nil {
		m[k] = *v
	}
}

// putFloat stores integral bounds as int64 so descriptors read naturally.
func putFloat(m map[string]any, k string, v *float64) {
	if v == nil {
		return
	}
	f := *v
	if f == float64(int64(f)) {
		m[k] = int64(f)
		return
	}
	m[k] = f
}

func mapList(in []*Schema) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s.Map()
	}
	return out
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
