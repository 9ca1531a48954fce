package skema

// Severity expresses how the front doors react to a condition such as a
// duplicate JSON key.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseOpt bundles options for the byte-level front doors (ParseJSON,
// ParseYAML). Node parsing itself takes no options.
type ParseOpt struct {
	// MaxDepth bounds container nesting while decoding; 0 means unlimited.
	MaxDepth int
	// MaxBytes bounds the input size; 0 means unlimited.
	MaxBytes int64
	// OnDuplicateKey controls duplicate object keys in JSON input.
	OnDuplicateKey Severity
}

// DefaultParseOpt returns the options used when none are supplied.
func DefaultParseOpt() ParseOpt {
	return ParseOpt{MaxDepth: 512, OnDuplicateKey: Error}
}

func pickOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return DefaultParseOpt()
	}
	return opts[len(opts)-1]
}
