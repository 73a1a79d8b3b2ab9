package mapping

import (
	"iter"
	"strings"

	"cloudio-glue/primitive"
	"cloudio-glue/topic"
)

// File represents the root of a YAML mapping file.
type File struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Node is the name under which the model's node is registered at the endpoint.
	Node string `yaml:"node,omitempty"`

	// Bindings maps local attribute names to remote bindings.
	Bindings *Mapping `yaml:"bindings"`
}

// Constraints is a set of binding constraints.
type Constraints int

const (
	ConstraintRead   Constraints = 1 << iota // local value is pushed outward
	ConstraintWrite                          // remote changes are applied to the model
	ConstraintStatic                         // pushed outward, never expected to change

	ConstraintAll  Constraints = (1 << iota) - 1 // all constraints combined
	ConstraintNone Constraints = 0               // no constraint selected
)

var constraintNames = []struct {
	c    Constraints
	name string
}{
	{ConstraintRead, "read"},
	{ConstraintWrite, "write"},
	{ConstraintStatic, "static"},
}

// ParseConstraint parses a single constraint name.
func ParseConstraint(name string) (Constraints, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, cn := range constraintNames {
		if cn.name == name {
			return cn.c, true
		}
	}

	return ConstraintNone, false
}

// Has reports whether all constraints of o are in c.
func (c Constraints) Has(o Constraints) bool {
	return o != ConstraintNone && c&o == o
}

// Pushable reports whether the binding is synchronized outward.
func (c Constraints) Pushable() bool {
	return c&(ConstraintRead|ConstraintStatic) != 0
}

// Writable reports whether the remote side may change the binding.
func (c Constraints) Writable() bool {
	return c.Has(ConstraintWrite)
}

// Names returns the constraint names in canonical order.
func (c Constraints) Names() []string {
	var names []string
	for _, cn := range constraintNames {
		if c.Has(cn.c) {
			names = append(names, cn.name)
		}
	}

	return names
}

func (c Constraints) String() string {
	return strings.Join(c.Names(), "|")
}

// Converter transforms a local value before it is pushed outward.
type Converter func(value any) any

// Descriptor describes how one local attribute is bound to the remote tree.
type Descriptor struct {
	// Topic is the dotted address, e.g. "properties.power".
	Topic string `yaml:"topic,omitempty"`

	// ObjectName and AttributeName form the legacy address.
	ObjectName    string `yaml:"object,omitempty"`
	AttributeName string `yaml:"attribute,omitempty"`

	// Type is used when the remote attribute has to be created.
	Type primitive.TypeEnum `yaml:"type,omitempty"`

	Constraints Constraints `yaml:"constraints,omitempty"`

	// ConverterName references a converter registry entry; Converter is the
	// resolved function. A Converter set directly takes precedence.
	ConverterName string    `yaml:"converter,omitempty"`
	Converter     Converter `yaml:"-"`
}

// IsTopic reports whether d uses topic addressing.
func (d *Descriptor) IsTopic() bool {
	return d.Topic != ""
}

// IsLegacy reports whether d uses the object/attribute pair.
func (d *Descriptor) IsLegacy() bool {
	return d.Topic == "" && (d.ObjectName != "" || d.AttributeName != "")
}

// Address returns the human readable address of d.
func (d *Descriptor) Address() string {
	if d.IsTopic() {
		return d.Topic
	}

	return d.ObjectName + "/" + d.AttributeName
}

// Stack computes the location stack of d. rootName is stripped from topics
// starting with it.
func (d *Descriptor) Stack(rootName string) (topic.Stack, error) {
	if d.IsTopic() {
		return topic.FromTopic(d.Topic, rootName, false)
	}

	return topic.FromLegacy(d.ObjectName, d.AttributeName), nil
}

// Convert applies the converter of d, if any.
func (d *Descriptor) Convert(v any) any {
	if d.Converter == nil {
		return v
	}

	return d.Converter(v)
}

// Mapping is an ordered registry of bindings keyed by local attribute name.
// The zero value is an empty mapping.
type Mapping struct {
	names    []string
	bindings map[string]*Descriptor
}

// New creates an empty mapping.
func New() *Mapping {
	return &Mapping{bindings: make(map[string]*Descriptor)}
}

// Set binds name to d, replacing (in place) any previous binding of name.
func (m *Mapping) Set(name string, d Descriptor) *Mapping {
	if m.bindings == nil {
		m.bindings = make(map[string]*Descriptor)
	}

	if _, exists := m.bindings[name]; !exists {
		m.names = append(m.names, name)
	}

	m.bindings[name] = &d

	return m
}

// Get returns the binding of name.
func (m *Mapping) Get(name string) (*Descriptor, bool) {
	if m == nil {
		return nil, false
	}

	d, ok := m.bindings[name]

	return d, ok
}

// Names returns the bound names in declaration order.
func (m *Mapping) Names() []string {
	if m == nil {
		return nil
	}

	return append([]string(nil), m.names...)
}

// Len returns the number of bindings.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.names)
}

// All iterates the bindings in declaration order.
func (m *Mapping) All() iter.Seq2[string, *Descriptor] {
	return func(yield func(string, *Descriptor) bool) {
		if m == nil {
			return
		}

		for _, name := range m.names {
			if !yield(name, m.bindings[name]) {
				return
			}
		}
	}
}
