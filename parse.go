package paramcheck

import (
	"context"
	"io"

	eng "github.com/reoring/paramcheck/internal/engine"
)

// ParseOpt bundles decoding guards. A zero value disables them.
type ParseOpt struct {
	MaxDepth int   // Maximum container nesting; 0 means unlimited.
	MaxBytes int64 // Maximum input size in bytes; 0 means unlimited.
}

// ParseFrom is the primary entry point. It consumes tokens from the Source,
// builds a value tree, and delegates validation to the Schema. Input that
// never produces a value tree (malformed syntax, guard violations) yields a
// *Problem whose Detail carries the decoder message and whose invalid_params
// is empty; validation is skipped entirely in that case.
func ParseFrom[T any](ctx context.Context, s Schema[T], src Source, opts ...ParseOpt) (T, error) {
	var zero T
	if s == nil {
		return zero, newSyntaxProblem("nil schema")
	}
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	v, err := decodeAnyFromSource(src, opt)
	if err != nil {
		return zero, newSyntaxProblem(err.Error())
	}
	return s.Parse(ctx, v)
}

// ParseBytes validates JSON bytes using the current JSON driver.
func ParseBytes[T any](ctx context.Context, s Schema[T], data []byte, opts ...ParseOpt) (T, error) {
	return ParseFrom(ctx, s, JSONBytes(data), opts...)
}

// ParseReader validates a JSON stream using the current JSON driver. The whole
// value tree is held in memory; this is not a streaming validator.
func ParseReader[T any](ctx context.Context, s Schema[T], r io.Reader, opts ...ParseOpt) (T, error) {
	return ParseFrom(ctx, s, JSONReader(r), opts...)
}

func decodeAnyFromSource(src Source, opt ParseOpt) (any, error) {
	engSrc := EngineTokenSource(src)
	guarded := eng.WrapWithGuards(engSrc, eng.GuardOptions{
		MaxDepth: opt.MaxDepth,
		MaxBytes: opt.MaxBytes,
	})
	return eng.DecodeAnyFromSource(guarded)
}
