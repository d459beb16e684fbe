package loader

import (
	"log/slog"

	"pageloader/internal/marshal"
	"pageloader/internal/page"
)

// DefaultMaxDepth bounds nested page loads.
const DefaultMaxDepth = 64

// Context is the loading context. It is the only entry point for loads.
type Context struct {
	marshallers *marshal.Registry
	resolver    *page.Resolver
	logger      *slog.Logger
	maxDepth    int
	builtins    bool
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger. Loads log at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) { c.logger = l }
}

// WithMaxDepth bounds nested loads. Values below 1 keep the default.
func WithMaxDepth(n int) Option {
	return func(c *Context) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithResolver replaces the page type resolver, e.g. one built with
// page.WithCaseInsensitiveNames.
func WithResolver(r *page.Resolver) Option {
	return func(c *Context) { c.resolver = r }
}

// WithoutBuiltins starts with an empty marshaller registry.
func WithoutBuiltins() Option {
	return func(c *Context) { c.builtins = false }
}

// New creates a Context with the builtin marshallers registered.
func New(opts ...Option) *Context {
	c := &Context{
		marshallers: marshal.NewRegistry(),
		logger:      slog.New(slog.DiscardHandler),
		maxDepth:    DefaultMaxDepth,
		builtins:    true,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.resolver == nil {
		c.resolver = page.NewResolver()
	}

	if c.builtins {
		for _, m := range marshal.Builtins() {
			c.marshallers.Register(m)
		}
	}

	return c
}

// RegisterPropMarshaller routes the kinds m declares to m, replacing earlier
// registrations for those kinds.
func (c *Context) RegisterPropMarshaller(m marshal.Marshaller) {
	c.marshallers.Register(m)
}

// RegisterPageType adds a page type descriptor.
func (c *Context) RegisterPageType(d *page.Descriptor) error {
	return c.resolver.Register(d)
}

// RegisterPageTypes adds descriptors in order, stopping at the first error.
func (c *Context) RegisterPageTypes(ds ...*page.Descriptor) error {
	for _, d := range ds {
		if err := c.resolver.Register(d); err != nil {
			return err
		}
	}

	return nil
}

// Marshallers returns the marshaller registry.
func (c *Context) Marshallers() *marshal.Registry {
	return c.marshallers
}

// Resolver returns the page type resolver.
func (c *Context) Resolver() *page.Resolver {
	return c.resolver
}

// MaxDepth returns the nesting limit.
func (c *Context) MaxDepth() int {
	return c.maxDepth
}
