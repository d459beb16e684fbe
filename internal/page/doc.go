// Package page describes loadable page types.
//
// A Descriptor names a page type, declares its place in the type hierarchy
// (Parent and Implements) and enumerates its properties in load order. Each
// Prop carries a value kind, a mapping rule saying where the raw value lives in
// the document node, and a typed setter built with Field or ListField, so
// assignment never goes through reflection.
//
// The Resolver maps logical names to descriptors and answers the
// required-type question: a descriptor satisfies a required type when it is
// that type, descends from it through Parent, or declares it in Implements
// anywhere along that chain.
package page
