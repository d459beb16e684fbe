package diagnostic

import (
	"fmt"
	"slices"
	"strings"
)

// Error is a loading failure with enough context to locate it in a document.
type Error struct {
	Kind Kind
	// Type is the page type the failure belongs to (the requested name for
	// KindUnknownPageType).
	Type string
	// Required is the caller's required type for KindTypeMismatch.
	Required string
	// Prop is the property being loaded, if any.
	Prop string
	// ValueKind is the property's declared value kind, if known.
	ValueKind string
	// Raw is the raw document value that failed to convert.
	Raw string
	// Path lists the enclosing "type.prop" steps of nested loads, outermost first.
	Path []string
	// Suggestions are close names for KindUnknownPageType.
	Suggestions []string
	// Err is the underlying cause.
	Err error
}

// UnknownPageType reports a name with no registered descriptor.
func UnknownPageType(name string, suggestions ...string) *Error {
	return &Error{Kind: KindUnknownPageType, Type: name, Suggestions: suggestions}
}

// TypeMismatch reports a resolved type that does not satisfy required.
func TypeMismatch(typ, required string) *Error {
	return &Error{Kind: KindTypeMismatch, Type: typ, Required: required}
}

// MissingProperty reports an absent required property.
func MissingProperty(typ, prop string) *Error {
	return &Error{Kind: KindMissingProperty, Type: typ, Prop: prop}
}

// UnknownMarshaller reports a value kind with no registered marshaller.
func UnknownMarshaller(valueKind string) *Error {
	return &Error{Kind: KindUnknownMarshaller, ValueKind: valueKind}
}

// Conversion reports a marshaller failure for a raw value.
func Conversion(typ, prop, raw string, cause error) *Error {
	return &Error{Kind: KindPropertyConversion, Type: typ, Prop: prop, Raw: raw, Err: cause}
}

// InvalidDescriptor reports a descriptor that cannot be used.
func InvalidDescriptor(typ string, cause error) *Error {
	return &Error{Kind: KindInvalidDescriptor, Type: typ, Err: cause}
}

// DepthExceeded reports nesting beyond limit.
func DepthExceeded(typ string, limit int) *Error {
	return &Error{Kind: KindDepthExceeded, Type: typ, Err: fmt.Errorf("limit is %d", limit)}
}

// Error formats the failure as "[code] message (via path)".
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("[")
	b.WriteString(e.Kind.Code())
	b.WriteString("] ")
	b.WriteString(e.message())

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	if len(e.Path) > 0 {
		b.WriteString(" (via ")
		b.WriteString(strings.Join(e.Path, " > "))
		b.WriteString(")")
	}

	return b.String()
}

func (e *Error) message() string {
	switch e.Kind {
	case KindUnknownPageType:
		msg := fmt.Sprintf("unknown page type %q", e.Type)
		if len(e.Suggestions) > 0 {
			quoted := make([]string, len(e.Suggestions))
			for i, s := range e.Suggestions {
				quoted[i] = fmt.Sprintf("%q", s)
			}

			msg += " (did you mean " + strings.Join(quoted, ", ") + "?)"
		}

		return msg
	case KindTypeMismatch:
		return fmt.Sprintf("page type %q is not assignable to %q", e.Type, e.Required)
	case KindMissingProperty:
		return fmt.Sprintf("%s: required property is missing", e.subject())
	case KindUnknownMarshaller:
		return fmt.Sprintf("%s: no marshaller registered for kind %q", e.subject(), e.ValueKind)
	case KindPropertyConversion:
		return fmt.Sprintf("%s: cannot convert %q", e.subject(), e.Raw)
	case KindInvalidDescriptor:
		return fmt.Sprintf("%s: invalid descriptor", e.subject())
	case KindDepthExceeded:
		return fmt.Sprintf("%s: nesting too deep", e.subject())
	default:
		return e.subject()
	}
}

func (e *Error) subject() string {
	switch {
	case e.Type != "" && e.Prop != "":
		return fmt.Sprintf("page type %q, property %q", e.Type, e.Prop)
	case e.Type != "":
		return fmt.Sprintf("page type %q", e.Type)
	case e.Prop != "":
		return fmt.Sprintf("property %q", e.Prop)
	default:
		return "load"
	}
}

// Is matches the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.Sentinel()
	return s != nil && target == s
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// At returns a copy of e with Type and Prop filled in where still empty.
func (e *Error) At(typ, prop string) *Error {
	cp := e.clone()
	if cp.Type == "" {
		cp.Type = typ
	}

	if cp.Prop == "" {
		cp.Prop = prop
	}

	return cp
}

// Within returns a copy of e with "typ.prop" prepended to its path.
func (e *Error) Within(typ, prop string) *Error {
	cp := e.clone()
	cp.Path = append([]string{typ + "." + prop}, e.Path...)

	return cp
}

func (e *Error) clone() *Error {
	cp := *e
	cp.Path = slices.Clone(e.Path)
	cp.Suggestions = slices.Clone(e.Suggestions)

	return &cp
}
