package mapping

import (
	"errors"
	"fmt"
	"sort"

	"cloudio-glue/primitive"
)

// ConverterRegistry holds named value converters referenced from mapping files.
type ConverterRegistry struct {
	converters map[string]Converter
}

// NewConverterRegistry creates a new empty converter registry.
func NewConverterRegistry() *ConverterRegistry {
	return &ConverterRegistry{
		converters: make(map[string]Converter),
	}
}

// DefaultConverters returns a registry with the built-in converters:
// identity, string, integer, number and boolean. The numeric and boolean
// converters leave values they cannot represent unchanged.
func DefaultConverters() *ConverterRegistry {
	r := NewConverterRegistry()

	r.converters["identity"] = func(v any) any { return v }
	r.converters["string"] = func(v any) any {
		if v == nil {
			return ""
		}

		return fmt.Sprint(v)
	}
	r.converters["integer"] = normalizing(primitive.TypeInteger)
	r.converters["number"] = normalizing(primitive.TypeNumber)
	r.converters["boolean"] = normalizing(primitive.TypeBoolean)

	return r
}

func normalizing(t primitive.TypeEnum) Converter {
	return func(v any) any {
		n, err := primitive.Normalize(t, v)
		if err != nil {
			return v
		}

		return n
	}
}

// Register adds a converter. Names must be unique.
func (r *ConverterRegistry) Register(name string, fn Converter) error {
	if name == "" {
		return errors.New("converter name must not be empty")
	}

	if fn == nil {
		return fmt.Errorf("converter %q is nil", name)
	}

	if _, exists := r.converters[name]; exists {
		return fmt.Errorf("converter %q already registered", name)
	}

	r.converters[name] = fn

	return nil
}

// Get returns a converter by name, or nil if not found.
func (r *ConverterRegistry) Get(name string) Converter {
	return r.converters[name]
}

// Has returns true if a converter with the given name exists.
func (r *ConverterRegistry) Has(name string) bool {
	_, exists := r.converters[name]
	return exists
}

// Names returns all converter names, sorted.
func (r *ConverterRegistry) Names() []string {
	names := make([]string, 0, len(r.converters))
	for name := range r.converters {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Bind resolves the ConverterName of every binding in m. Bindings already
// carrying a Converter are left alone. One error is returned per unknown name.
func (r *ConverterRegistry) Bind(m *Mapping) []error {
	var errs []error

	for name, d := range m.All() {
		if d.ConverterName == "" || d.Converter != nil {
			continue
		}

		fn := r.Get(d.ConverterName)
		if fn == nil {
			errs = append(errs, fmt.Errorf("binding %q: converter %q not found", name, d.ConverterName))
			continue
		}

		d.Converter = fn
	}

	return errs
}
