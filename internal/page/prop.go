package page

import (
	"fmt"
	"reflect"
)

// SourceKind says where a property's raw value comes from.
type SourceKind int

const (
	// FromAttribute reads the named attribute of the page's node.
	FromAttribute SourceKind = iota
	// FromElement reads the first child element with the given tag.
	FromElement
	// FromCharData reads the node's own character data.
	FromCharData
)

// Source is a property mapping rule.
type Source struct {
	Kind SourceKind
	Name string
}

// Attr maps a property to an attribute.
func Attr(name string) Source {
	return Source{Kind: FromAttribute, Name: name}
}

// Child maps a property to a child element.
func Child(name string) Source {
	return Source{Kind: FromElement, Name: name}
}

// Text maps a property to the node's character data.
func Text() Source {
	return Source{Kind: FromCharData}
}

// String returns "@name", "<name>" or "#text".
func (s Source) String() string {
	switch s.Kind {
	case FromAttribute:
		return "@" + s.Name
	case FromElement:
		return "<" + s.Name + ">"
	default:
		return "#text"
	}
}

// Prop declares one property of a page type.
type Prop struct {
	Name   string
	Kind   Kind
	Source Source
	// Of is the element page type for KindPage and KindList properties.
	// It is both the fallback type name and the required type of nested loads.
	Of TypeID
	// Optional props may be absent; the page keeps its zero value.
	Optional bool
	// Default is marshalled in place of an absent raw value.
	Default *string
	// Min and Max bound numeric values.
	Min *float64
	Max *float64

	set func(p Page, v any) error
}

// PropOption configures a Prop.
type PropOption func(*Prop)

// FromAttr reads the property from the named attribute.
func FromAttr(name string) PropOption {
	return func(p *Prop) { p.Source = Attr(name) }
}

// FromChild reads the property from the first child element with this tag.
func FromChild(name string) PropOption {
	return func(p *Prop) { p.Source = Child(name) }
}

// FromText reads the property from the node's character data.
func FromText() PropOption {
	return func(p *Prop) { p.Source = Text() }
}

// Optional marks the property as allowed to be absent.
func Optional() PropOption {
	return func(p *Prop) { p.Optional = true }
}

// Default sets the raw value used when the property is absent.
func Default(raw string) PropOption {
	return func(p *Prop) { p.Default = &raw }
}

// Min sets a lower bound for numeric kinds.
func Min(v float64) PropOption {
	return func(p *Prop) { p.Min = &v }
}

// Max sets an upper bound for numeric kinds.
func Max(v float64) PropOption {
	return func(p *Prop) { p.Max = &v }
}

// Of sets the element page type of page and list properties.
func Of(t TypeID) PropOption {
	return func(p *Prop) { p.Of = t }
}

// NewProp builds a property with an untyped setter. Most callers want Field.
// The source defaults to the attribute named like the property.
func NewProp(name string, kind Kind, set func(p Page, v any) error, opts ...PropOption) Prop {
	p := Prop{Name: name, Kind: kind, Source: Attr(name), set: set}
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Field builds a property whose converted value must be a V, assigned
// through set on a page of type P.
func Field[P Page, V any](name string, kind Kind, set func(P, V), opts ...PropOption) Prop {
	return NewProp(name, kind, func(pg Page, v any) error {
		target, ok := pg.(P)
		if !ok {
			return fmt.Errorf("property %q cannot be set on %T", name, pg)
		}

		val, ok := v.(V)
		if !ok {
			return fmt.Errorf("value of type %T is not assignable to %s", v, reflect.TypeFor[V]())
		}

		set(target, val)

		return nil
	}, opts...)
}

// ListField builds a KindList property whose elements must all be E.
func ListField[P Page, E Page](name string, set func(P, []E), opts ...PropOption) Prop {
	return Field(name, KindList, func(p P, items []Page) {
		// withCheck has already verified every item.
		out := make([]E, len(items))
		for i, it := range items {
			out[i] = it.(E)
		}

		set(p, out)
	}, opts...).withCheck(func(v any) error {
		items, ok := v.([]Page)
		if !ok {
			return nil
		}

		for i, it := range items {
			if _, ok := it.(E); !ok {
				return fmt.Errorf("list item %d of type %T is not a %s", i, it, reflect.TypeFor[E]())
			}
		}

		return nil
	})
}

// Assign stores v on p.
func (p Prop) Assign(pg Page, v any) error {
	if p.set == nil {
		return fmt.Errorf("property %q has no setter", p.Name)
	}

	return p.set(pg, v)
}

// withCheck runs check before the existing setter.
func (p Prop) withCheck(check func(v any) error) Prop {
	set := p.set
	p.set = func(pg Page, v any) error {
		if err := check(v); err != nil {
			return err
		}

		return set(pg, v)
	}

	return p
}
