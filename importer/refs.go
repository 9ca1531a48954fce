package importer

import (
	"fmt"
	"strings"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
)

// extractDefs merges the local $defs and legacy definitions tables.
func extractDefs(doc map[string]any) map[string]any {
	out := map[string]any{}
	for _, key := range []string{"definitions", "$defs"} {
		if m, ok := doc[key].(map[string]any); ok {
			for k, v := range m {
				out[k] = v
			}
		}
	}
	return out
}

func defName(ref string) (string, bool) {
	for _, prefix := range []string{"#/$defs/", "#/definitions/"} {
		if name, ok := strings.CutPrefix(ref, prefix); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

// ref resolves a local reference. Each definition is built once and shared;
// a definition that reaches itself while being built gets a Deferred cell,
// bound when the definition is complete. Non-recursive references therefore
// stay exportable.
func (im *importer) ref(ref string, at skema.Path) (skema.Schema, error) {
	name, ok := defName(ref)
	if !ok {
		return nil, fmt.Errorf("importer: %s: $ref %q not supported (local $defs only)", at.Pointer(), ref)
	}
	if s, ok := im.built[name]; ok {
		return s, nil
	}
	if im.active[name] {
		cell := im.cells[name]
		if cell == nil {
			cell = dsl.Deferred()
			im.cells[name] = cell
		}
		return cell, nil
	}
	def, ok := im.defs[name].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("importer: %s: $ref to unknown definition %q", at.Pointer(), name)
	}
	im.active[name] = true
	s, err := im.node(def, skema.Path{"$defs", name})
	delete(im.active, name)
	if err != nil {
		return nil, err
	}
	if cell := im.cells[name]; cell != nil {
		cell.Bind(s)
	}
	im.built[name] = s
	return s, nil
}

// unwrapCRDSchema extracts openAPIV3Schema from a Kubernetes CRD document.
// It prefers a served version in spec.versions, then falls back to
// spec.validation for legacy documents.
func unwrapCRDSchema(root map[string]any) map[string]any {
	spec, ok := root["spec"].(map[string]any)
	if !ok {
		return nil
	}
	if vers, ok := spec["versions"].([]any); ok {
		var first map[string]any
		for _, v := range vers {
			vm, _ := v.(map[string]any)
			sch, _ := vm["schema"].(map[string]any)
			oas, ok := sch["openAPIV3Schema"].(map[string]any)
			if !ok {
				continue
			}
			if served, ok := vm["served"].(bool); !ok || served {
				return oas
			}
			if first == nil {
				first = oas
			}
		}
		if first != nil {
			return first
		}
	}
	if val, ok := spec["validation"].(map[string]any); ok {
		if oas, ok := val["openAPIV3Schema"].(map[string]any); ok {
			return oas
		}
	}
	return nil
}
