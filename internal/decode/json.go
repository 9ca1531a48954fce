package decode

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// JSONBytes decodes a single JSON document.
func JSONBytes(data []byte, lim Limits) (any, []Problem) {
	if lim.MaxBytes > 0 && int64(len(data)) > lim.MaxBytes {
		return nil, []Problem{{Code: codeTruncated, Path: []any{}, Message: "input exceeds max bytes"}}
	}
	return decodeJSON(bytes.NewReader(data), lim)
}

// JSONReader decodes a single JSON document from r. Reader failures other
// than malformed JSON are returned as errors.
func JSONReader(r io.Reader, lim Limits) (any, []Problem, error) {
	if lim.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, lim.MaxBytes+1))
		if err != nil {
			return nil, nil, err
		}
		v, probs := JSONBytes(data, lim)
		return v, probs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	v, probs := decodeJSON(bytes.NewReader(data), lim)
	return v, probs, nil
}

func decodeJSON(r io.Reader, lim Limits) (any, []Problem) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	jr := &jsonReader{dec: dec, tracker: tracker{lim: lim}}
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, []Problem{{Code: codeParseError, Path: []any{}, Message: "empty input"}}
		}
		return nil, []Problem{{Code: codeParseError, Path: []any{}, Message: err.Error()}}
	}
	v, err := jr.value(tok, nil, 0)
	if err != nil {
		if !errors.Is(err, errAbort) {
			jr.problems = append(jr.problems, Problem{Code: codeParseError, Path: []any{}, Message: err.Error()})
		}
		return nil, jr.problems
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		jr.problems = append(jr.problems, Problem{Code: codeParseError, Path: []any{}, Message: "unexpected data after top-level value"})
	}
	if jr.failed() {
		return nil, jr.problems
	}
	return v, jr.problems
}

type jsonReader struct {
	dec *j.Decoder
	tracker
}

func (r *jsonReader) value(tok any, path []any, depth int) (any, error) {
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			if err := r.enter(path, depth+1); err != nil {
				return nil, err
			}
			return r.object(path, depth+1)
		case '[':
			if err := r.enter(path, depth+1); err != nil {
				return nil, err
			}
			return r.array(path, depth+1)
		}
		return nil, r.fatal(codeParseError, path, "unexpected delimiter %q", rune(v))
	case string:
		return v, nil
	case j.Number:
		return Number(string(v)), nil
	case float64:
		return v, nil
	case bool:
		return v, nil
	case nil:
		return nil, nil
	}
	return nil, r.fatal(codeParseError, path, "unsupported token %T", tok)
}

func (r *jsonReader) object(path []any, depth int) (any, error) {
	out := map[string]any{}
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(j.Delim); ok && d == '}' {
			return out, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, r.fatal(codeParseError, path, "expected object key")
		}
		if _, dup := out[key]; dup {
			r.duplicate(path, key)
		}
		vt, err := r.dec.Token()
		if err != nil {
			return nil, err
		}
		child := append(clonePath(path), key)
		v, err := r.value(vt, child, depth)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
}

func (r *jsonReader) array(path []any, depth int) (any, error) {
	out := []any{}
	for i := 0; ; i++ {
		tok, err := r.dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(j.Delim); ok && d == ']' {
			return out, nil
		}
		child := append(clonePath(path), i)
		v, err := r.value(tok, child, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// Number converts a JSON number literal: integral literals become int64,
// everything else (fractions, exponents, int64 overflow) becomes float64.
func Number(lit string) any {
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return i
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return lit
	}
	return f
}
