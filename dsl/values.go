package dsl

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// asSeq accepts []any directly and any other slice or array kind through
// reflection. Byte slices are not sequences.
func asSeq(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case nil, []byte, string:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asMap accepts map[string]any directly and any other string-keyed map
// through reflection.
func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// toFloat reports the numeric value of v for every Go number kind and
// json.Number.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	}
	return 0, false
}

// isInteger reports whether v has an integer kind. Floats never count, even
// when integral, mirroring the strict int/float split of decoded JSON.
func isInteger(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case json.Number:
		if strings.ContainsAny(string(n), ".eE") {
			return false
		}
		_, err := strconv.ParseInt(string(n), 10, 64)
		return err == nil
	}
	return false
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// describe names the dynamic kind of v for invalid_type params.
func describe(v any) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	}
	if isInteger(v) {
		return "integer"
	}
	if _, ok := toFloat(v); ok {
		return "float"
	}
	if _, ok := v.([]byte); ok {
		return "bytes"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

// formatNumber renders a bound without a trailing ".0" for integral values.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// literalEqual is strict equality on the value's category: integers only
// equal integers (across Go widths and json.Number), floats only equal
// floats, and everything else needs the same dynamic type and ==.
// Non-comparable values never match.
func literalEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ai, bi := isInteger(a), isInteger(b)
	if ai || bi {
		return ai && bi && fmt.Sprint(a) == fmt.Sprint(b)
	}
	fa, aok := toFloat(a)
	fb, bok := toFloat(b)
	if aok || bok {
		return aok && bok && fa == fb
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// quote renders a value for messages: strings in single quotes, everything
// else in Go's default format.
func quote(v any) string {
	if s, ok := v.(string); ok {
		return "'" + s + "'"
	}
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}
