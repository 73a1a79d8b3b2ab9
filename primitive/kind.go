package primitive

import (
	"fmt"
	"reflect"
	"strings"
)

//go:generate go tool stringer -type=TypeEnum -trimprefix=Type -output=type_string.go

// TypeEnum is the semantic type of an attribute value in the remote tree.
type TypeEnum int

const (
	_ TypeEnum = iota // skip zero value, use it as a default (invalid) value for TypeEnum

	TypeBoolean
	TypeInteger
	TypeNumber
	TypeString

	// TypeTotal is a constant that represents the total number of types defined
	TypeTotal = int(iota)
)

// IsValid reports whether t is one of the declared types.
func (t TypeEnum) IsValid() bool {
	return t > 0 && int(t) < TypeTotal
}

func (t TypeEnum) IsNumeric() bool {
	switch t {
	default:
		return false
	case TypeInteger, TypeNumber:
		return true
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TypeEnum) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid attribute type %d", int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TypeEnum) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// ParseType parses an attribute type name. Both the cloud.iO names
// (Boolean, Integer, Number, String) and the usual Go spellings are accepted.
func ParseType(name string) (TypeEnum, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "boolean", "bool":
		return TypeBoolean, nil
	case "integer", "int", "int64":
		return TypeInteger, nil
	case "number", "float", "float64", "double":
		return TypeNumber, nil
	case "string", "str":
		return TypeString, nil
	default:
		return 0, fmt.Errorf("unknown attribute type %q", name)
	}
}

// FromReflectType maps a Go type onto the attribute type able to hold its values.
// Named types (enums) are classified by their underlying kind.
func FromReflectType(rtype reflect.Type) TypeEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeInteger
	case reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.String:
		return TypeString
	}
}

// FromValue returns the attribute type of a plain value, or zero if v has none.
func FromValue(v any) TypeEnum {
	if v == nil {
		return 0
	}

	return FromReflectType(reflect.TypeOf(v))
}
