package mapping

import (
	"errors"
	"fmt"

	"cloudio-glue/internal/diagnostic"
	"cloudio-glue/topic"
)

// ErrMalformedBinding is returned when a binding lacks constraints or a
// valid addressing style.
var ErrMalformedBinding = errors.New("malformed binding")

// BindingError reports the first malformed binding of a mapping.
type BindingError struct {
	Name   string // local attribute name
	Field  string // offending descriptor field
	Code   string
	Reason string
	Hint   string
}

func (e *BindingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s %q: %s: %s", ErrMalformedBinding, e.Name, e.Field, e.Reason)
	}

	return fmt.Sprintf("%s %q: %s", ErrMalformedBinding, e.Name, e.Reason)
}

func (e *BindingError) Unwrap() error {
	return ErrMalformedBinding
}

// Diagnostic codes reported by Validate.
const (
	CodeMappingIsNil       = "mapping_is_nil"
	CodeEmptyName          = "empty_name"
	CodeMissingConstraints = "missing_constraints"
	CodeInvalidConstraints = "invalid_constraints"
	CodeMixedAddress       = "mixed_address"
	CodeInvalidTopic       = "invalid_topic"
	CodeMissingAddress     = "missing_address"
	CodeMissingObject      = "missing_object"
	CodeMissingAttribute   = "missing_attribute"
	CodeLegacyAddress      = "legacy_address"
	CodeMissingType        = "missing_type"
	CodeUnknownConverter   = "unknown_converter"
)

var hints = map[string]string{
	CodeMissingConstraints: "add constraints: read, write or static",
	CodeInvalidConstraints: "use only read, write and static",
	CodeMixedAddress:       "keep either topic or object/attribute",
	CodeInvalidTopic:       "separate objects and attribute with single dots, e.g. properties.power",
	CodeMissingAddress:     "add a topic, e.g. properties.power",
	CodeMissingObject:      "add object, or replace both with topic",
	CodeMissingAttribute:   "add attribute, or replace both with topic",
	CodeLegacyAddress:      "replace object and attribute with topic <object>.<attribute>",
	CodeMissingType:        "add type: Boolean, Integer, Number or String",
	CodeUnknownConverter:   "register the converter before setting the mapping",
}

// Validate checks every binding of m. Converter names are checked against
// converters when it is non-nil; bindings carrying a Converter function
// need no registry.
func Validate(m *Mapping, converters *ConverterRegistry) *diagnostic.Diagnostics {
	res := diagnostic.New(hints)
	if m == nil {
		res.Errorf("", "", CodeMappingIsNil, "mapping is nil")
		return res
	}

	for name, d := range m.All() {
		if name == "" {
			res.Errorf(name, "", CodeEmptyName, "binding name must not be empty")
		}

		validateConstraints(res, name, d)
		validateAddress(res, name, d)

		if !d.Type.IsValid() {
			res.Warnf(name, "type", CodeMissingType, "no attribute type; the remote attribute cannot be created")
		}

		if d.ConverterName != "" && d.Converter == nil && (converters == nil || !converters.Has(d.ConverterName)) {
			res.Errorf(name, "converter", CodeUnknownConverter, "converter %q is not registered", d.ConverterName)
		}
	}

	return res
}

func validateConstraints(res *diagnostic.Diagnostics, name string, d *Descriptor) {
	switch {
	case d.Constraints == ConstraintNone:
		res.Errorf(name, "constraints", CodeMissingConstraints, "constraints are required")
	case d.Constraints&^ConstraintAll != 0:
		res.Errorf(name, "constraints", CodeInvalidConstraints, "unknown constraint bits %#x", int(d.Constraints))
	}
}

func validateAddress(res *diagnostic.Diagnostics, name string, d *Descriptor) {
	hasObject, hasAttribute := d.ObjectName != "", d.AttributeName != ""

	switch {
	case d.Topic != "" && (hasObject || hasAttribute):
		res.Errorf(name, "topic", CodeMixedAddress, "use either topic or object/attribute, not both")
	case d.Topic != "":
		if _, err := topic.FromTopic(d.Topic, "", true); err != nil {
			res.Errorf(name, "topic", CodeInvalidTopic, "%v", err)
		}
	case !hasObject && !hasAttribute:
		res.Errorf(name, "topic", CodeMissingAddress, "topic or object/attribute is required")
	case !hasObject:
		res.Errorf(name, "object", CodeMissingObject, "attribute given without object")
	case !hasAttribute:
		res.Errorf(name, "attribute", CodeMissingAttribute, "object given without attribute")
	default:
		res.Warnf(name, "object", CodeLegacyAddress,
			"object/attribute addressing will be replaced by topic in future releases")
	}
}

// Check validates m and returns the first error as a *BindingError, or nil.
func Check(m *Mapping, converters *ConverterRegistry) error {
	return FirstError(Validate(m, converters))
}

// FirstError converts the first error of res into a *BindingError.
func FirstError(res *diagnostic.Diagnostics) error {
	errs := res.Errors()
	if len(errs) == 0 {
		return nil
	}

	first := errs[0]

	return &BindingError{
		Name:   first.Binding,
		Field:  first.Field,
		Code:   first.Code,
		Reason: first.Message,
		Hint:   first.Hint,
	}
}
