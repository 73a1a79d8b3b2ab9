package tree

import (
	"errors"

	"cloudio-glue/primitive"
)

var (
	// ErrNotFound is returned when a location stack does not resolve.
	ErrNotFound = errors.New("not found in tree")

	// ErrExists is returned when a child name is already taken.
	ErrExists = errors.New("already exists in tree")
)

// NodeInterface is declared by nodes created for a bound model.
const NodeInterface = "NodeInterface"

// Container is anything holding objects: a Node or an Object.
type Container interface {
	Name() string

	// FindObject resolves an object stack relative to this container, e.g.
	// [inner objects outer objects].
	FindObject(stack []string) (Object, bool)

	// AddObject attaches obj under name.
	AddObject(name string, obj Object) error

	// FindAttribute resolves a full location stack relative to this
	// container. It fails with ErrNotFound if any segment is missing.
	FindAttribute(stack []string) (Attribute, error)

	// Objects returns the direct child objects in insertion order.
	Objects() []Object
}

// Node is the root of a model's subtree.
type Node interface {
	Container

	SetName(name string)
	DeclareImplementedInterface(name string)
	Interfaces() []string
}

// Object is an inner branch of the tree.
type Object interface {
	Container

	Parent() Container
	AddAttribute(name string, t primitive.TypeEnum) (Attribute, error)
	Attributes() []Attribute
}

// Attribute is a typed leaf value.
type Attribute interface {
	Name() string
	Parent() Object
	Type() primitive.TypeEnum
	Value() any

	// SetValue performs a local write that is published by the endpoint.
	SetValue(v any) error

	AddListener(l Listener)
	RemoveListener(l Listener)
}

// Listener is notified about attribute changes.
type Listener interface {
	// AttributeHasChanged reports whether the change was applied.
	AttributeHasChanged(attr Attribute, fromCloud bool) bool
}

// Endpoint registers nodes.
type Endpoint interface {
	AddNode(name string, node Node) error
}

// Factory creates empty tree elements.
type Factory interface {
	NewNode() Node
	NewObject() Object
}
