package dsl

import "github.com/reoring/skema/coerce"

// CoerceString stringifies scalar input before validating it as a string.
func CoerceString() *PreprocessSchema[*StringSchema] {
	return Preprocess(coerce.String, String())
}

// CoerceNumber turns bools and numeric strings into numbers first.
func CoerceNumber() *PreprocessSchema[*NumberSchema] {
	return Preprocess(coerce.Number, Number())
}

// CoerceBoolean accepts 1/0 and tokens such as "yes" or "off".
func CoerceBoolean() *PreprocessSchema[*BooleanSchema] {
	return Preprocess(coerce.Boolean, Boolean())
}
