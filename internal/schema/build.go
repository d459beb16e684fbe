package schema

import (
	"errors"
	"fmt"

	"pageloader/internal/page"
)

// Build returns one descriptor per declared page, in file order. Concrete
// pages construct *page.Dynamic values.
func Build(f *File) ([]*page.Descriptor, error) {
	if f == nil {
		return nil, errors.New("schema file is nil")
	}

	var errs []error

	out := make([]*page.Descriptor, 0, len(f.Pages))

	for i := range f.Pages {
		d := Descriptor(&f.Pages[i])
		if err := d.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("page %q: %w", d.ID, err))
			continue
		}

		out = append(out, d)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return out, nil
}

// Descriptor converts one page definition.
func Descriptor(pd *PageDef) *page.Descriptor {
	id := page.TypeID(pd.Name)

	props := make([]page.Prop, 0, len(pd.Props))
	for _, p := range pd.Props {
		props = append(props, buildProp(p))
	}

	var d *page.Descriptor
	if pd.Abstract {
		d = page.AbstractType(id, props...)
	} else {
		d = page.Describe(id, func() *page.Dynamic { return page.NewDynamic(id) }, props...)
	}

	if pd.Extends != "" {
		d.Extends(page.TypeID(pd.Extends))
	}

	for _, iface := range pd.Implements {
		d.Implementing(page.TypeID(iface))
	}

	return d
}

func buildProp(p PropDef) page.Prop {
	opts := []page.PropOption{sourceOption(p.Source)}

	if p.Of != "" {
		opts = append(opts, page.Of(page.TypeID(p.Of)))
	}

	if p.Optional {
		opts = append(opts, page.Optional())
	}

	if p.Default != nil {
		opts = append(opts, page.Default(*p.Default))
	}

	if p.Min != nil {
		opts = append(opts, page.Min(*p.Min))
	}

	if p.Max != nil {
		opts = append(opts, page.Max(*p.Max))
	}

	name := p.Name

	return page.NewProp(name, page.Kind(p.Kind), func(pg page.Page, v any) error {
		d, ok := pg.(*page.Dynamic)
		if !ok {
			return fmt.Errorf("property %q cannot be set on %T", name, pg)
		}

		d.Set(name, v)

		return nil
	}, opts...)
}

func sourceOption(s SourceDef) page.PropOption {
	switch {
	case s.Child != "":
		return page.FromChild(s.Child)
	case s.Text:
		return page.FromText()
	default:
		return page.FromAttr(s.Attr)
	}
}
