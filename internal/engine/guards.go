package engine

import "errors"

// Guard wrapper for TokenSource applying max depth checks and max bytes
// truncation in a streaming fashion, ahead of tree construction.

// GuardOptions controls runtime guard behavior. Zero values disable a guard.
type GuardOptions struct {
	MaxDepth int
	MaxBytes int64
}

// ErrMaxDepth and ErrMaxBytes surface guard violations; the caller treats them
// like any other decode failure (no value tree is produced).
var (
	ErrMaxDepth = errors.New("max depth exceeded")
	ErrMaxBytes = errors.New("max bytes exceeded")
)

// WrapWithGuards returns a TokenSource that enforces maximum nesting depth and
// maximum consumed bytes. With both guards disabled the inner source is
// returned unwrapped.
func WrapWithGuards(inner TokenSource, opt GuardOptions) TokenSource {
	if opt.MaxDepth <= 0 && opt.MaxBytes <= 0 {
		return inner
	}
	return &guardedTokenSource{inner: inner, opt: opt}
}

type guardedTokenSource struct {
	inner TokenSource
	opt   GuardOptions
	depth int
}

func (g *guardedTokenSource) NextToken() (Token, error) {
	tok, err := g.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		g.depth++
		if g.opt.MaxDepth > 0 && g.depth > g.opt.MaxDepth {
			return Token{}, ErrMaxDepth
		}
	case KindEndObject, KindEndArray:
		if g.depth > 0 {
			g.depth--
		}
	}
	if g.opt.MaxBytes > 0 {
		if off := g.Location(); off >= 0 && off > g.opt.MaxBytes {
			return Token{}, ErrMaxBytes
		}
	}
	return tok, nil
}

func (g *guardedTokenSource) Location() int64 { return g.inner.Location() }
