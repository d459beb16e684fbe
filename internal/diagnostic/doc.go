// Package diagnostic defines the loader's error taxonomy and the coded
// diagnostics reported by schema validation and document checks.
//
// Every failure raised while resolving or loading a page is an *Error whose
// Kind matches one of the package sentinels:
//
//	ErrUnknownPageType    no descriptor for the requested name
//	ErrTypeMismatch       resolved type does not satisfy the required type
//	ErrMissingProperty    a required property has no raw value
//	ErrUnknownMarshaller  no marshaller for a property's value kind
//	ErrPropertyConversion a marshaller rejected a raw value
//	ErrInvalidDescriptor  a descriptor cannot be registered or instantiated
//	ErrDepthExceeded      nested loads went deeper than the configured limit
//
// Use errors.Is against the sentinels and errors.As to reach the details.
package diagnostic
