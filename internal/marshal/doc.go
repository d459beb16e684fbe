// Package marshal defines property marshallers and the registry that routes
// value kinds to them.
//
// A Marshaller converts the raw document value of one property into its typed
// value. It declares the kinds it handles, and registering it routes every
// one of those kinds to it; a later registration for the same kind replaces
// the earlier one. Marshallers for composite values receive a Loader and may
// load nested pages through it.
//
// Builtins provides marshallers for bool, int, float, string, page and list.
package marshal
