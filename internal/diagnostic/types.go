package diagnostic

import (
	"errors"
	"fmt"
	"slices"
)

// Severity of a diagnostic. Errors make a mapping unusable, warnings do not.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single finding about one binding.
type Diagnostic struct {
	Severity Severity
	Code     string // stable identifier, e.g. "missing_constraints"
	Binding  string // empty for findings about the whole mapping
	Field    string // descriptor field, if any
	Message  string
	Hint     string // how to fix it, looked up by code
}

// String renders d as "[binding] field: [code] message".
func (d Diagnostic) String() string {
	s := d.Message
	if d.Code != "" {
		s = "[" + d.Code + "] " + s
	}

	switch {
	case d.Binding != "" && d.Field != "":
		return fmt.Sprintf("[%s] %s: %s", d.Binding, d.Field, s)
	case d.Binding != "":
		return fmt.Sprintf("[%s]: %s", d.Binding, s)
	case d.Field != "":
		return d.Field + ": " + s
	default:
		return s
	}
}

func (d Diagnostic) Error() string { return d.String() }

// Diagnostics collects findings in the order they are reported.
type Diagnostics struct {
	hints map[string]string
	items []Diagnostic
}

// New returns an empty collection. hints maps codes to fix hints attached to
// every diagnostic reported with that code.
func New(hints map[string]string) *Diagnostics {
	return &Diagnostics{hints: hints}
}

// Errorf reports an error about binding.
func (d *Diagnostics) Errorf(binding, field, code, format string, args ...any) {
	d.add(SeverityError, binding, field, code, fmt.Sprintf(format, args...))
}

// Warnf reports a warning about binding.
func (d *Diagnostics) Warnf(binding, field, code, format string, args ...any) {
	d.add(SeverityWarning, binding, field, code, fmt.Sprintf(format, args...))
}

func (d *Diagnostics) add(sev Severity, binding, field, code, msg string) {
	d.items = append(d.items, Diagnostic{
		Severity: sev,
		Code:     code,
		Binding:  binding,
		Field:    field,
		Message:  msg,
		Hint:     d.hints[code],
	})
}

func (d *Diagnostics) filter(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, item := range d.items {
		if item.Severity == sev {
			out = append(out, item)
		}
	}

	return out
}

// Errors returns the error diagnostics in report order.
func (d *Diagnostics) Errors() []Diagnostic { return d.filter(SeverityError) }

// Warnings returns the warning diagnostics in report order.
func (d *Diagnostics) Warnings() []Diagnostic { return d.filter(SeverityWarning) }

func (d *Diagnostics) HasErrors() bool {
	return slices.ContainsFunc(d.items, func(item Diagnostic) bool {
		return item.Severity == SeverityError
	})
}

// All returns errors before warnings, each in report order.
func (d *Diagnostics) All() []Diagnostic {
	return append(d.Errors(), d.Warnings()...)
}

// Bindings lists the bindings that have findings, in the order they were
// first reported.
func (d *Diagnostics) Bindings() []string {
	var names []string
	for _, item := range d.items {
		if !slices.Contains(names, item.Binding) {
			names = append(names, item.Binding)
		}
	}

	return names
}

// For returns the findings about binding, errors first.
func (d *Diagnostics) For(binding string) []Diagnostic {
	var out []Diagnostic
	for _, item := range d.All() {
		if item.Binding == binding {
			out = append(out, item)
		}
	}

	return out
}

// Err joins every error diagnostic, or returns nil.
func (d *Diagnostics) Err() error {
	var errs []error
	for _, item := range d.Errors() {
		errs = append(errs, item)
	}

	return errors.Join(errs...)
}
