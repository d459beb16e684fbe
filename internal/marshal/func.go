package marshal

import (
	"context"
	"slices"

	"pageloader/internal/page"
)

// Func adapts a parse function into a scalar marshaller for the given kinds.
// Only the raw string is used; the source node is ignored.
func Func[T any](parse func(raw string) (T, error), kinds ...page.Kind) Marshaller {
	return scalar[T]{kinds: kinds, parse: parse}
}

type scalar[T any] struct {
	kinds []page.Kind
	parse func(string) (T, error)
}

func (s scalar[T]) Kinds() []page.Kind {
	return slices.Clone(s.kinds)
}

func (s scalar[T]) Unmarshal(_ context.Context, _ Loader, v Value) (any, error) {
	out, err := s.parse(v.Raw)
	if err != nil {
		return nil, err
	}

	return out, nil
}
