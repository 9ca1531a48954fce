package skema

import (
	"strconv"
	"strings"
)

// Path locates an issue inside the input. Elements are string keys or int
// indexes, outermost first.
type Path []any

// Field returns a new path extended by an object key.
func (p Path) Field(name string) Path { return p.append(name) }

// Index returns a new path extended by a sequence index.
func (p Path) Index(i int) Path { return p.append(i) }

func (p Path) append(seg any) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, seg)
}

// Pointer renders the path as an RFC 6901 JSON Pointer. The root renders as "/".
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteByte('/')
		switch s := seg.(type) {
		case string:
			// escape '~' -> '~0', '/' -> '~1' per RFC6901
			b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1"))
		case int:
			b.WriteString(strconv.Itoa(s))
		default:
			b.WriteString(segString(seg))
		}
	}
	return b.String()
}

// String renders a dotted form such as items[1].name, used by text reports.
func (p Path) String() string {
	if len(p) == 0 {
		return "(root)"
	}
	b := &strings.Builder{}
	for i, seg := range p {
		if idx, ok := seg.(int); ok {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(idx))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(segString(seg))
	}
	return b.String()
}

func segString(seg any) string {
	switch s := seg.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return "?"
	}
}
