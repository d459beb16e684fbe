package diagnostic

import "errors"

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies a loading failure.
type Kind int

const (
	_ Kind = iota

	KindUnknownPageType
	KindTypeMismatch
	KindMissingProperty
	KindUnknownMarshaller
	KindPropertyConversion
	KindInvalidDescriptor
	KindDepthExceeded
)

var (
	ErrUnknownPageType    = errors.New("unknown page type")
	ErrTypeMismatch       = errors.New("page type mismatch")
	ErrMissingProperty    = errors.New("missing property")
	ErrUnknownMarshaller  = errors.New("unknown marshaller")
	ErrPropertyConversion = errors.New("property conversion failed")
	ErrInvalidDescriptor  = errors.New("invalid page descriptor")
	ErrDepthExceeded      = errors.New("nesting depth exceeded")
)

// Sentinel returns the package-level error matched by errors.Is for k.
func (k Kind) Sentinel() error {
	switch k {
	case KindUnknownPageType:
		return ErrUnknownPageType
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindMissingProperty:
		return ErrMissingProperty
	case KindUnknownMarshaller:
		return ErrUnknownMarshaller
	case KindPropertyConversion:
		return ErrPropertyConversion
	case KindInvalidDescriptor:
		return ErrInvalidDescriptor
	case KindDepthExceeded:
		return ErrDepthExceeded
	default:
		return nil
	}
}

// Code returns the snake_case diagnostic code for k.
func (k Kind) Code() string {
	switch k {
	case KindUnknownPageType:
		return "unknown_page_type"
	case KindTypeMismatch:
		return "type_mismatch"
	case KindMissingProperty:
		return "missing_property"
	case KindUnknownMarshaller:
		return "unknown_marshaller"
	case KindPropertyConversion:
		return "property_conversion"
	case KindInvalidDescriptor:
		return "invalid_descriptor"
	case KindDepthExceeded:
		return "depth_exceeded"
	default:
		return "unknown"
	}
}
