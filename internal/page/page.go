package page

import (
	"maps"
	"slices"
)

// TypeID names a page type. It is the logical name documents and callers use.
type TypeID string

// Any is the empty required type: every page satisfies it.
const Any TypeID = ""

// Kind identifies a property value kind; marshallers are registered per Kind.
type Kind string

// Builtin value kinds.
const (
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindString Kind = "string"
	KindPage   Kind = "page"
	KindList   Kind = "list"
)

// TypeAttr is the attribute that names the concrete type of a nested page.
const TypeAttr = "type"

// TemplateAttr is the attribute that names an earlier sibling page whose
// values seed the properties a page leaves out.
const TemplateAttr = "template"

// IsReservedAttr reports whether name is an attribute the loader interprets
// itself and no property may map.
func IsReservedAttr(name string) bool {
	return name == TypeAttr || name == TemplateAttr
}

// Page is implemented by every loadable type.
type Page interface {
	PageType() TypeID
}

// Dynamic is a page whose properties are stored by name. Descriptors built
// from a schema file construct Dynamic pages.
type Dynamic struct {
	typ    TypeID
	values map[string]any
}

// NewDynamic returns an empty page of type typ.
func NewDynamic(typ TypeID) *Dynamic {
	return &Dynamic{typ: typ, values: make(map[string]any)}
}

// PageType returns the page's type.
func (d *Dynamic) PageType() TypeID {
	return d.typ
}

// Get returns the value stored for prop.
func (d *Dynamic) Get(prop string) (any, bool) {
	v, ok := d.values[prop]
	return v, ok
}

// Set stores v for prop.
func (d *Dynamic) Set(prop string, v any) {
	d.values[prop] = v
}

// Props returns the names of the stored properties, sorted.
func (d *Dynamic) Props() []string {
	return slices.Sorted(maps.Keys(d.values))
}
