package loader

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"pageloader/internal/diagnostic"
	"pageloader/internal/marshal"
	"pageloader/internal/node"
	"pageloader/internal/page"
)

var (
	// ErrNilNode is returned when a load is asked for a nil node.
	ErrNilNode = errors.New("node is nil")
	// ErrUnknownTemplate is returned by LoadAll when a template attribute
	// names no earlier sibling.
	ErrUnknownTemplate = errors.New("unknown template")
)

// template is an earlier sibling whose node supplies values a templated page
// leaves out. Templates chain through their own templates.
type template struct {
	node   node.Node
	typ    page.TypeID
	parent *template
}

var _ marshal.Loader = (*Context)(nil)

type depthKey struct{}

func depthOf(ctx context.Context) int {
	d, _ := ctx.Value(depthKey{}).(int)
	return d
}

// LoadPage loads n as the page type registered under name, with no required
// type. An empty name falls back to the node's tag.
func (c *Context) LoadPage(ctx context.Context, n node.Node, name string) (page.Page, error) {
	return c.LoadRequired(ctx, n, name, page.Any)
}

// LoadRequired loads n as the page type registered under name and fails with
// diagnostic.ErrTypeMismatch unless that type satisfies required. The type
// check happens before anything is read from n.
//
// Only a top-level call checks ctx for cancellation; once started, a load
// runs to completion or failure.
func (c *Context) LoadRequired(ctx context.Context, n node.Node, name string, required page.TypeID) (page.Page, error) {
	return c.loadRequired(ctx, n, name, required, nil)
}

func (c *Context) loadRequired(
	ctx context.Context,
	n node.Node,
	name string,
	required page.TypeID,
	tmpl *template,
) (page.Page, error) {
	depth := depthOf(ctx)

	if depth == 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("loading page %q: %w", name, err)
		}
	}

	if n == nil {
		return nil, fmt.Errorf("loading page %q: %w", name, ErrNilNode)
	}

	if name == "" {
		name = n.Tag()
	}

	if depth >= c.maxDepth {
		return nil, diagnostic.DepthExceeded(name, c.maxDepth)
	}

	p, err := c.load(context.WithValue(ctx, depthKey{}, depth+1), n, name, required, tmpl)
	if err != nil {
		c.logger.Debug("page load failed", "name", name, "required", required, "depth", depth, "error", err)
		return nil, err
	}

	c.logger.Debug("page loaded", "name", name, "type", p.PageType(), "depth", depth)

	return p, nil
}

func (c *Context) load(
	ctx context.Context,
	n node.Node,
	name string,
	required page.TypeID,
	tmpl *template,
) (page.Page, error) {
	d, err := c.resolver.Resolve(name)
	if err != nil {
		return nil, err
	}

	if err := c.resolver.Validate(d, required); err != nil {
		return nil, err
	}

	if d.Abstract {
		return nil, diagnostic.InvalidDescriptor(string(d.ID), errors.New("abstract type cannot be loaded"))
	}

	// inst stays local until every property is in place.
	inst := d.New()
	if inst == nil {
		return nil, diagnostic.InvalidDescriptor(string(d.ID), errors.New("constructor returned nil"))
	}

	for _, prop := range c.resolver.Props(d) {
		if err := c.loadProp(ctx, n, tmpl, d.ID, inst, prop); err != nil {
			return nil, err
		}
	}

	return inst, nil
}

func (c *Context) loadProp(
	ctx context.Context,
	n node.Node,
	tmpl *template,
	owner page.TypeID,
	inst page.Page,
	prop page.Prop,
) error {
	v, ok := extract(n, prop.Source)
	for t := tmpl; !ok && t != nil; t = t.parent {
		v, ok = extract(t.node, prop.Source)
	}

	if !ok {
		switch {
		case prop.Default != nil:
			v = marshal.Value{Raw: *prop.Default}
		case prop.Optional:
			return nil
		default:
			return diagnostic.MissingProperty(string(owner), prop.Name)
		}
	}

	v.Prop = prop
	v.Owner = owner

	m, err := c.marshallers.Lookup(prop.Kind)
	if err != nil {
		var le *diagnostic.Error
		if errors.As(err, &le) {
			return le.At(string(owner), prop.Name)
		}

		return err
	}

	val, err := m.Unmarshal(ctx, c, v)
	if err != nil {
		// Failures of nested loads keep their own kind; we only add where
		// they happened.
		var le *diagnostic.Error
		if errors.As(err, &le) {
			return le.Within(string(owner), prop.Name)
		}

		return diagnostic.Conversion(string(owner), prop.Name, v.Raw, err)
	}

	if err := prop.Assign(inst, val); err != nil {
		return diagnostic.Conversion(string(owner), prop.Name, v.Raw, err)
	}

	return nil
}

// extract reads the raw value for src from n. Character data that is empty
// after trimming counts as absent.
func extract(n node.Node, src page.Source) (marshal.Value, bool) {
	switch src.Kind {
	case page.FromAttribute:
		raw, ok := n.Attr(src.Name)
		return marshal.Value{Raw: raw}, ok
	case page.FromElement:
		child, ok := node.FirstChild(n, src.Name)
		if !ok {
			return marshal.Value{}, false
		}

		return marshal.Value{Raw: strings.TrimSpace(child.Text()), Node: child}, true
	case page.FromCharData:
		text := strings.TrimSpace(n.Text())
		return marshal.Value{Raw: text}, text != ""
	default:
		return marshal.Value{}, false
	}
}

// Load loads n under name and returns it as a P. A page that loads but is
// not a P fails with diagnostic.ErrTypeMismatch.
func Load[P page.Page](ctx context.Context, c *Context, n node.Node, name string) (P, error) {
	return LoadAs[P](ctx, c, n, name, page.Any)
}

// LoadAs is Load with a required page type.
func LoadAs[P page.Page](ctx context.Context, c *Context, n node.Node, name string, required page.TypeID) (P, error) {
	var zero P

	p, err := c.LoadRequired(ctx, n, name, required)
	if err != nil {
		return zero, err
	}

	typed, ok := p.(P)
	if !ok {
		return zero, diagnostic.TypeMismatch(string(p.PageType()), reflect.TypeFor[P]().String())
	}

	return typed, nil
}

// LoadAll loads every element child of root, in order. Each child is loaded
// under its type attribute, or its tag when it has none.
//
// A child with a template attribute names the tag of an earlier sibling.
// Properties the child leaves out are read from that sibling's element, then
// from its own template, before defaults apply. The child must be of the
// template's type or a subtype of it, and loads as that type when it has no
// type attribute of its own.
func (c *Context) LoadAll(ctx context.Context, root node.Node) ([]page.Page, error) {
	if root == nil {
		return nil, ErrNilNode
	}

	children := root.Children()
	pages := make([]page.Page, 0, len(children))
	templates := make(map[string]*template, len(children))

	for i, child := range children {
		p, tmpl, err := c.loadSibling(ctx, child, templates)
		if err != nil {
			return nil, fmt.Errorf("element %d <%s>: %w", i, child.Tag(), err)
		}

		templates[child.Tag()] = &template{node: child, typ: p.PageType(), parent: tmpl}
		pages = append(pages, p)
	}

	return pages, nil
}

func (c *Context) loadSibling(
	ctx context.Context,
	child node.Node,
	templates map[string]*template,
) (page.Page, *template, error) {
	ref, ok := child.Attr(page.TemplateAttr)
	if !ok || ref == "" {
		p, err := c.LoadPage(ctx, child, marshal.NestedName(child, page.TypeID(child.Tag())))
		return p, nil, err
	}

	tmpl, ok := templates[ref]
	if !ok {
		return nil, nil, fmt.Errorf("%w %q", ErrUnknownTemplate, ref)
	}

	p, err := c.loadRequired(ctx, child, marshal.NestedName(child, tmpl.typ), tmpl.typ, tmpl)
	if err != nil {
		return nil, nil, fmt.Errorf("template %q: %w", ref, err)
	}

	c.logger.Debug("page loaded from template", "tag", child.Tag(), "template", ref)

	return p, tmpl, nil
}
