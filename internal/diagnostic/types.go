package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics holds the outcome of a schema validation or a document check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Source names the schema or document file, if any.
	Source string
	// Page identifies the page type this relates to (if any).
	Page string
	// Prop identifies the property this relates to (if any).
	Prop string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, page, prop string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Page:     page,
		Prop:     prop,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, page, prop string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Page:     page,
		Prop:     prop,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, page, prop string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Page:     page,
		Prop:     prop,
	})
}

// AddErr records err as an error diagnostic attributed to source.
func (d *Diagnostics) AddErr(source string, err error) {
	diag := FromError(err)
	diag.Source = source
	d.Errors = append(d.Errors, diag)
}

// FromError converts err into an error diagnostic. Taxonomy errors keep
// their code, page, prop and suggestions; anything else gets code "error".
func FromError(err error) Diagnostic {
	var le *Error
	if !errors.As(err, &le) {
		return Diagnostic{Severity: SeverityError, Code: "error", Message: err.Error()}
	}

	return Diagnostic{
		Severity:    SeverityError,
		Code:        le.Kind.Code(),
		Message:     strings.TrimPrefix(le.Error(), "["+le.Kind.Code()+"] "),
		Page:        le.Type,
		Prop:        le.Prop,
		Suggestions: le.Suggestions,
	}
}

// SetSource attributes every diagnostic without a source to source.
func (d *Diagnostics) SetSource(source string) {
	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for i := range list {
			if list[i].Source == "" {
				list[i].Source = source
			}
		}
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Source != "" {
		prefix = append(prefix, d.Source)
	}

	if d.Page != "" {
		prefix = append(prefix, "["+d.Page+"]")
	}

	if d.Prop != "" {
		prefix = append(prefix, d.Prop)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
