package paramcheck

import "context"

// Schema validates a value tree and produces a typed result. The root
// Descriptor is exposed so callers can inspect or re-render the expected
// shape. Bare *Descriptor values implement Schema[any]; dsl.Bind produces
// struct-typed implementations.
type Schema[T any] interface {
	// Parse validates v and constructs T. On failure it returns a *Problem
	// listing every violation found; no partial value accompanies it.
	Parse(ctx context.Context, v any) (T, error)

	// Descriptor returns the structural description driving validation.
	Descriptor() *Descriptor
}

// Is reports whether v conforms to s.
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	_, err := s.Parse(ctx, v)
	return err == nil
}
