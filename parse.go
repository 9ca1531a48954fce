package skema

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/reoring/skema/internal/decode"
)

// ParseJSON decodes data into a value tree under opt limits and parses it
// with s. Decoding failures are returned as Issues (parse_error,
// duplicate_key, truncated) so callers see a single error model.
func ParseJSON(ctx context.Context, s Schema, data []byte, opts ...ParseOpt) (any, error) {
	v, err := DecodeJSON(ctx, data, opts...)
	if err != nil {
		return nil, err
	}
	return s.Parse(ctx, v)
}

// ParseJSONReader is ParseJSON over an io.Reader.
func ParseJSONReader(ctx context.Context, s Schema, r io.Reader, opts ...ParseOpt) (any, error) {
	opt := pickOpt(opts)
	v, probs, err := decode.JSONReader(r, limits(opt))
	if err != nil {
		return nil, fmt.Errorf("skema: read json: %w", err)
	}
	if err := report(ctx, probs); err != nil {
		return nil, err
	}
	return s.Parse(ctx, v)
}

// ParseYAML decodes the first YAML document in data and parses it with s.
func ParseYAML(ctx context.Context, s Schema, data []byte, opts ...ParseOpt) (any, error) {
	v, err := DecodeYAML(ctx, data, opts...)
	if err != nil {
		return nil, err
	}
	return s.Parse(ctx, v)
}

// ParseYAMLStream parses every document of a multi-document YAML stream with
// s and returns the parsed documents in order. Issue paths start with the
// document index. Documents that fail to decode are not handed to s.
func ParseYAMLStream(ctx context.Context, s Schema, data []byte, opts ...ParseOpt) ([]any, error) {
	docs, probs := decode.YAMLDocuments(data, limits(pickOpt(opts)))
	var iss Issues
	if err := report(ctx, probs); err != nil {
		iss, _ = AsIssues(err)
	}
	broken := map[int]bool{}
	for _, it := range iss {
		if len(it.Path) == 0 {
			return nil, iss
		}
		if i, ok := it.Path[0].(int); ok {
			broken[i] = true
		}
	}
	out := make([]any, len(docs))
	for i, doc := range docs {
		if broken[i] {
			continue
		}
		v, err := s.Parse(ctx, doc)
		if err != nil {
			more, ok := AsIssues(err)
			if !ok {
				return nil, err
			}
			iss = AppendIssues(iss, more.Prefix(i)...)
			continue
		}
		out[i] = v
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// DecodeJSON builds the value tree for data without running a schema.
func DecodeJSON(ctx context.Context, data []byte, opts ...ParseOpt) (any, error) {
	v, probs := decode.JSONBytes(data, limits(pickOpt(opts)))
	if err := report(ctx, probs); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeYAML builds the value tree for the first YAML document in data.
func DecodeYAML(ctx context.Context, data []byte, opts ...ParseOpt) (any, error) {
	v, probs := decode.YAMLBytes(data, limits(pickOpt(opts)))
	if err := report(ctx, probs); err != nil {
		return nil, err
	}
	return v, nil
}

func limits(opt ParseOpt) decode.Limits {
	lim := decode.Limits{MaxDepth: opt.MaxDepth, MaxBytes: opt.MaxBytes}
	switch opt.OnDuplicateKey {
	case Error:
		lim.OnDup = decode.DupError
	case Warn:
		lim.OnDup = decode.DupWarn
	default:
		lim.OnDup = decode.DupIgnore
	}
	return lim
}

// report logs warnings and returns the remaining problems as Issues.
func report(ctx context.Context, probs []decode.Problem) error {
	var iss Issues
	for _, p := range probs {
		if p.Warning {
			slog.WarnContext(ctx, "skema: decode warning", "code", p.Code, "path", Path(p.Path).Pointer(), "message", p.Message)
			continue
		}
		iss = AppendIssues(iss, Issue{Code: p.Code, Message: p.Message, Path: Path(p.Path)})
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}
