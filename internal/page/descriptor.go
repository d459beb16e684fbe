package page

import (
	"errors"
	"fmt"
	"slices"
)

// Descriptor declares a page type.
type Descriptor struct {
	ID TypeID
	// Parent is the declared supertype; its properties load before ours.
	Parent TypeID
	// Implements lists further types this one satisfies as a required type.
	Implements []TypeID
	// Abstract types resolve and take part in type checks but cannot be loaded.
	Abstract bool
	// Props are loaded in declaration order.
	Props []Prop
	// New returns a fresh, empty instance.
	New func() Page
}

// Describe builds a concrete descriptor constructing pages with newFn.
func Describe[P Page](id TypeID, newFn func() P, props ...Prop) *Descriptor {
	return &Descriptor{
		ID:    id,
		Props: props,
		New:   func() Page { return newFn() },
	}
}

// AbstractType builds a descriptor that can only be used as a supertype.
func AbstractType(id TypeID, props ...Prop) *Descriptor {
	return &Descriptor{ID: id, Abstract: true, Props: props}
}

// Extends sets the parent type and returns d.
func (d *Descriptor) Extends(parent TypeID) *Descriptor {
	d.Parent = parent
	return d
}

// Implementing adds implemented types and returns d.
func (d *Descriptor) Implementing(ids ...TypeID) *Descriptor {
	d.Implements = append(d.Implements, ids...)
	return d
}

// Prop returns the declared (not inherited) property with the given name.
func (d *Descriptor) Prop(name string) (Prop, bool) {
	i := slices.IndexFunc(d.Props, func(p Prop) bool { return p.Name == name })
	if i < 0 {
		return Prop{}, false
	}

	return d.Props[i], true
}

// Validate checks the descriptor's own declarations. Two properties may not
// share a name or a mapping rule, and none may map a reserved attribute.
func (d *Descriptor) Validate() error {
	var errs []error

	if d.ID == "" {
		errs = append(errs, errors.New("type id is empty"))
	}

	if !d.Abstract && d.New == nil {
		errs = append(errs, errors.New("concrete type has no constructor"))
	}

	if d.Parent != "" && d.Parent == d.ID {
		errs = append(errs, errors.New("type extends itself"))
	}

	names := make(map[string]struct{}, len(d.Props))
	sources := make(map[Source]string, len(d.Props))

	for _, p := range d.Props {
		if p.Name == "" {
			errs = append(errs, errors.New("property with empty name"))
			continue
		}

		if _, dup := names[p.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate property %q", p.Name))
		}

		names[p.Name] = struct{}{}

		if p.Kind == "" {
			errs = append(errs, fmt.Errorf("property %q has no value kind", p.Name))
		}

		if p.set == nil {
			errs = append(errs, fmt.Errorf("property %q has no setter", p.Name))
		}

		if (p.Kind == KindPage || p.Kind == KindList) && p.Source.Kind != FromElement {
			errs = append(errs, fmt.Errorf("property %q of kind %s must be read from a child element", p.Name, p.Kind))
		}

		if p.Source.Kind == FromAttribute && IsReservedAttr(p.Source.Name) {
			errs = append(errs, fmt.Errorf("property %q maps the reserved attribute %q", p.Name, p.Source.Name))
		}

		if other, dup := sources[p.Source]; dup {
			errs = append(errs, fmt.Errorf("properties %q and %q both map %s", other, p.Name, p.Source))
		}

		sources[p.Source] = p.Name
	}

	return errors.Join(errs...)
}
