package importer

import "fmt"

// Diag carries non-fatal warnings produced during import.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }

// knownKeywords are consumed by the importer. Annotations are accepted and
// dropped; anything else produces a warning.
var knownKeywords = keywordSet(
	"type", "format", "pattern", "enum", "const", "not",
	"default", "nullable",
	"minLength", "maxLength",
	"minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum", "multipleOf",
	"properties", "required", "additionalProperties", "propertyNames",
	"x-kubernetes-preserve-unknown-fields",
	"items", "prefixItems", "additionalItems", "minItems", "maxItems",
	"anyOf", "allOf", "oneOf",
	"$ref", "$defs", "definitions",

	// annotations
	"$schema", "$id", "$comment", "title", "description",
	"examples", "deprecated", "readOnly", "writeOnly",
)

func keywordSet(keys ...string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}
