package primitive

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

var (
	// ErrValueType is returned when a value is not a plain value (e.g. a function).
	ErrValueType = errors.New("value must be of standard type")
	// ErrTypeMismatch is returned when a value cannot be represented by the requested type.
	ErrTypeMismatch = errors.New("value type mismatch")
)

// CheckValue rejects values which can never be attribute values: functions,
// channels and unsafe pointers.
func CheckValue(v any) error {
	if v == nil {
		return nil
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Errorf("%w: got %T", ErrValueType, v)
	default:
		return nil
	}
}

// Zero returns the canonical zero value of the type.
func Zero(t TypeEnum) any {
	switch t {
	case TypeBoolean:
		return false
	case TypeInteger:
		return int64(0)
	case TypeNumber:
		return float64(0)
	case TypeString:
		return ""
	default:
		return nil
	}
}

// Normalize converts v into the canonical Go representation of t:
// bool, int64, float64 or string. A nil value yields the zero value.
func Normalize(t TypeEnum, v any) (any, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid attribute type %d", int(t))
	}

	if err := CheckValue(v); err != nil {
		return nil, err
	}

	if v == nil {
		return Zero(t), nil
	}

	rv := reflect.ValueOf(v)

	switch t {
	case TypeBoolean:
		if rv.Kind() == reflect.Bool {
			return rv.Bool(), nil
		}
	case TypeInteger:
		if i, ok := asInt64(rv); ok {
			return i, nil
		}
	case TypeNumber:
		if f, ok := asFloat64(rv); ok {
			return f, nil
		}
	case TypeString:
		if rv.Kind() == reflect.String {
			return rv.String(), nil
		}
	}

	return nil, fmt.Errorf("%w: %T is not %s", ErrTypeMismatch, v, t)
}

// Parse reads the textual form of a value of type t.
func Parse(t TypeEnum, s string) (any, error) {
	switch t {
	case TypeBoolean:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not %s", ErrTypeMismatch, s, t)
		}

		return b, nil
	case TypeInteger:
		i, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not %s", ErrTypeMismatch, s, t)
		}

		return i, nil
	case TypeNumber:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not %s", ErrTypeMismatch, s, t)
		}

		return f, nil
	case TypeString:
		return s, nil
	default:
		return nil, fmt.Errorf("invalid attribute type %d", int(t))
	}
}

// Equal compares two attribute values by value. Numbers of different Go types
// compare equal when they denote the same quantity.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := FromValue(a), FromValue(b)
	if ta.IsNumeric() && tb.IsNumeric() {
		ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
		if ta == TypeInteger && tb == TypeInteger {
			ia, okA := asInt64(ra)
			ib, okB := asInt64(rb)

			if okA && okB {
				return ia == ib
			}
		}

		fa, _ := asFloat64(ra)
		fb, _ := asFloat64(rb)

		return fa == fb
	}

	if ta != 0 && ta == tb {
		na, _ := Normalize(ta, a)
		nb, _ := Normalize(tb, b)

		return na == nb
	}

	return reflect.DeepEqual(a, b)
}

// Convert produces a reflect.Value of type rtype carrying v, suitable for
// reflect.Value.Set or as a call argument.
func Convert(v any, rtype reflect.Type) (reflect.Value, error) {
	if err := CheckValue(v); err != nil {
		return reflect.Value{}, err
	}

	if v == nil {
		return reflect.Zero(rtype), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(rtype) {
		return rv, nil
	}

	if rtype.Kind() == reflect.Interface {
		return reflect.Value{}, fmt.Errorf("%w: %T does not implement %s", ErrTypeMismatch, v, rtype)
	}

	t := FromReflectType(rtype)
	if t == 0 {
		return reflect.Value{}, fmt.Errorf("%w: cannot assign %T to %s", ErrTypeMismatch, v, rtype)
	}

	n, err := Normalize(t, v)
	if err != nil {
		return reflect.Value{}, err
	}

	out := reflect.New(rtype).Elem()

	switch rtype.Kind() {
	case reflect.Bool:
		out.SetBool(n.(bool))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := n.(int64)
		if out.OverflowInt(i) {
			return reflect.Value{}, fmt.Errorf("%w: %d overflows %s", ErrTypeMismatch, i, rtype)
		}

		out.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i := n.(int64)
		if i < 0 || out.OverflowUint(uint64(i)) {
			return reflect.Value{}, fmt.Errorf("%w: %d overflows %s", ErrTypeMismatch, i, rtype)
		}

		out.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		out.SetFloat(n.(float64))
	case reflect.String:
		out.SetString(n.(string))
	}

	return out, nil
}

func asInt64(rv reflect.Value) (int64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}

		return int64(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.Trunc(f) != f || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}

		return int64(f), true
	default:
		return 0, false
	}
}

func asFloat64(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
