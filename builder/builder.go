package builder

import "context"

// A Builder assembles a value T out of previously supplied parts.
type Builder[T any] interface {
	Build(ctx context.Context) (T, error)
}
