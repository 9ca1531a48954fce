package decode

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLBytes decodes the first YAML document in data into a JSON-like tree.
// Mapping keys are stringified; duplicate keys follow lim.OnDup.
func YAMLBytes(data []byte, lim Limits) (any, []Problem) {
	if lim.MaxBytes > 0 && int64(len(data)) > lim.MaxBytes {
		return nil, []Problem{{Code: codeTruncated, Path: []any{}, Message: "input exceeds max bytes"}}
	}
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, []Problem{{Code: codeParseError, Path: []any{}, Message: err.Error()}}
	}
	yr := &yamlReader{tracker: tracker{lim: lim}}
	v, err := yr.node(&doc, nil, 0)
	if err != nil {
		if !errors.Is(err, errAbort) {
			yr.problems = append(yr.problems, Problem{Code: codeParseError, Path: []any{}, Message: err.Error()})
		}
		return nil, yr.problems
	}
	if yr.failed() {
		return nil, yr.problems
	}
	return v, yr.problems
}

// YAMLDocuments decodes every document of a multi-document stream. Paths of
// per-document problems start with the document index; a syntax error ends
// the stream at the failing document. Limits apply per document, except
// MaxBytes which covers the whole input.
func YAMLDocuments(data []byte, lim Limits) ([]any, []Problem) {
	if lim.MaxBytes > 0 && int64(len(data)) > lim.MaxBytes {
		return nil, []Problem{{Code: codeTruncated, Path: []any{}, Message: "input exceeds max bytes"}}
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []any
	var problems []Problem
	for i := 0; ; i++ {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if !errors.Is(err, io.EOF) {
				problems = append(problems, Problem{Code: codeParseError, Path: []any{i}, Message: err.Error()})
			}
			return out, problems
		}
		yr := &yamlReader{tracker: tracker{lim: lim}}
		v, err := yr.node(&doc, []any{i}, 0)
		if err != nil && !errors.Is(err, errAbort) {
			yr.problems = append(yr.problems, Problem{Code: codeParseError, Path: []any{i}, Message: err.Error()})
		}
		problems = append(problems, yr.problems...)
		out = append(out, v)
	}
}

type yamlReader struct {
	tracker
}

func (r *yamlReader) node(n *yaml.Node, path []any, depth int) (any, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return r.node(n.Content[0], path, depth)
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, r.fatal(codeParseError, path, "dangling alias")
		}
		return r.node(n.Alias, path, depth)
	case yaml.MappingNode:
		if err := r.enter(path, depth+1); err != nil {
			return nil, err
		}
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if _, dup := out[key]; dup {
				r.duplicate(path, key)
			}
			v, err := r.node(n.Content[i+1], append(clonePath(path), key), depth+1)
			if err != nil {
				return nil, err
			}
			out[key] = v
		}
		return out, nil
	case yaml.SequenceNode:
		if err := r.enter(path, depth+1); err != nil {
			return nil, err
		}
		out := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := r.node(c, append(clonePath(path), i), depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		return r.scalar(n, path)
	}
	return nil, r.fatal(codeParseError, path, "unsupported yaml node kind %d", n.Kind)
}

func (r *yamlReader) scalar(n *yaml.Node, path []any) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, r.fatal(codeParseError, path, "%v", err)
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i, nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, r.fatal(codeParseError, path, "%v", err)
		}
		return f, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, r.fatal(codeParseError, path, "%v", err)
		}
		return f, nil
	default:
		// strings, timestamps and binary stay textual
		return n.Value, nil
	}
}
