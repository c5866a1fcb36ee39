package paramcheck

// Package paramcheck provides:
//
// - Error-collecting structural validation of JSON (and YAML) value trees
// - A stable RFC 7807 style report (Problem / InvalidParam with JSON Pointers)
// - Descriptor-driven traversal with expected/actual type labels and intrinsic
//   integer range checks
// - Pluggable input drivers via Source/JSONDriver (encoding/json, go-json)
//
// Design policy:
// - Keep only public APIs in the root package; put decoding details under internal/.
// - Place the descriptor builder under dsl/, input drivers under source/, and
//   the CLI under cmd/paramcheck.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	d := buildDescriptor()
//	v, err := paramcheck.ParseFrom(ctx, d, paramcheck.JSONBytes(data))
//	if p, ok := paramcheck.AsProblem(err); ok {
//		// p.InvalidParams lists every violation with its pointer
//	}
//
//	s := dsl.MustFor[User]()
//	u, err := paramcheck.ParseFrom(ctx, s, paramcheck.JSONBytes(data))
