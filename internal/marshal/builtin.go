package marshal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pageloader/internal/node"
	"pageloader/internal/page"
)

// ErrNoElement is returned by the page and list marshallers when the value
// has no source element.
var ErrNoElement = errors.New("value has no source element")

// Builtins returns the marshallers for the builtin value kinds.
func Builtins() []Marshaller {
	return []Marshaller{
		Func(parseBool, page.KindBool),
		bounded[int]{kind: page.KindInt, parse: strconv.Atoi},
		bounded[float64]{kind: page.KindFloat, parse: func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		}},
		Func(func(s string) (string, error) { return s, nil }, page.KindString),
		Nested{},
		List{},
	}
}

func parseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}

type number interface {
	~int | ~float64
}

// bounded parses numbers and enforces the prop's Min and Max.
type bounded[T number] struct {
	kind  page.Kind
	parse func(string) (T, error)
}

func (b bounded[T]) Kinds() []page.Kind {
	return []page.Kind{b.kind}
}

func (b bounded[T]) Unmarshal(_ context.Context, _ Loader, v Value) (any, error) {
	n, err := b.parse(strings.TrimSpace(v.Raw))
	if err != nil {
		return nil, err
	}

	if v.Prop.Min != nil && float64(n) < *v.Prop.Min {
		return nil, fmt.Errorf("%v is below minimum %v", n, *v.Prop.Min)
	}

	if v.Prop.Max != nil && float64(n) > *v.Prop.Max {
		return nil, fmt.Errorf("%v is above maximum %v", n, *v.Prop.Max)
	}

	return n, nil
}

// NestedName returns the type name used to load n: its type attribute if
// present, fallback otherwise.
func NestedName(n node.Node, fallback page.TypeID) string {
	if t, ok := n.Attr(page.TypeAttr); ok && t != "" {
		return t
	}

	return string(fallback)
}

// Nested loads the source element as a page of the prop's Of type.
type Nested struct{}

// Kinds returns the page kind.
func (Nested) Kinds() []page.Kind {
	return []page.Kind{page.KindPage}
}

// Unmarshal loads v.Node.
func (Nested) Unmarshal(ctx context.Context, l Loader, v Value) (any, error) {
	if v.Node == nil {
		return nil, ErrNoElement
	}

	return l.LoadRequired(ctx, v.Node, NestedName(v.Node, v.Prop.Of), v.Prop.Of)
}

// List loads every element child of the source element as a page of the
// prop's Of type. The result is a []page.Page in document order.
type List struct{}

// Kinds returns the list kind.
func (List) Kinds() []page.Kind {
	return []page.Kind{page.KindList}
}

// Unmarshal loads the children of v.Node.
func (List) Unmarshal(ctx context.Context, l Loader, v Value) (any, error) {
	if v.Node == nil {
		return nil, ErrNoElement
	}

	children := v.Node.Children()
	items := make([]page.Page, 0, len(children))

	for _, c := range children {
		p, err := l.LoadRequired(ctx, c, NestedName(c, v.Prop.Of), v.Prop.Of)
		if err != nil {
			return nil, err
		}

		items = append(items, p)
	}

	return items, nil
}
