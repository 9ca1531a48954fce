// Package skema provides:
//
// - Declarative validation of untyped value trees through the Schema contract
// - A stable error model via Issues (path, code, message, params)
// - JSON and YAML front doors with duplicate-key/depth/size enforcement
// - Binding of validated values into Go structs (ParseInto)
//
// Design policy:
// - Keep only the contract and front doors in the root package; builders live in dsl/.
// - Place decoding under internal/decode, descriptor import under importer/, and the CLI under cmd/skema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := dsl.Object(dsl.Prop("id", dsl.String()))
//	v, err := skema.ParseJSON(ctx, s, data)
//	res := skema.SafeParse(ctx, s, v)
//	err = skema.ParseInto(ctx, s, v, &out)
package skema
