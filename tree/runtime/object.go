package runtime

import (
	"fmt"
	"sync"

	"cloudio-glue/primitive"
	"cloudio-glue/tree"
)

// Object is the in-memory tree.Object.
type Object struct {
	mu        sync.RWMutex
	name      string
	parent    tree.Container
	objects   children
	attrNames []string
	attrs     map[string]*Attribute
}

var _ tree.Object = (*Object)(nil)

// NewObject creates a detached object. It gets its name when added to a
// container.
func NewObject() *Object {
	return &Object{}
}

func (o *Object) Name() string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.name
}

func (o *Object) Parent() tree.Container {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.parent
}

func (o *Object) FindObject(stack []string) (tree.Object, bool) {
	found, ok := findObject(o, stack)
	if !ok {
		return nil, false
	}

	return found, true
}

func (o *Object) AddObject(name string, obj tree.Object) error {
	if obj == tree.Object(o) {
		return fmt.Errorf("object %q: cannot contain itself", name)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return o.objects.add(name, o, obj)
}

func (o *Object) FindAttribute(stack []string) (tree.Attribute, error) {
	a, err := findAttribute(o, stack)
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (o *Object) Objects() []tree.Object {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.objects.list()
}

// AddAttribute creates an attribute holding the zero value of t.
func (o *Object) AddAttribute(name string, t primitive.TypeEnum) (tree.Attribute, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("attribute %q: %w: %v", name, primitive.ErrTypeMismatch, t)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, exists := o.attrs[name]; exists {
		return nil, fmt.Errorf("attribute %q: %w", name, tree.ErrExists)
	}

	if o.attrs == nil {
		o.attrs = make(map[string]*Attribute)
	}

	a := &Attribute{name: name, parent: o, typ: t, value: primitive.Zero(t)}
	o.attrNames = append(o.attrNames, name)
	o.attrs[name] = a

	return a, nil
}

func (o *Object) Attributes() []tree.Attribute {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]tree.Attribute, 0, len(o.attrNames))
	for _, name := range o.attrNames {
		out = append(out, o.attrs[name])
	}

	return out
}

func (o *Object) child(name string) (*Object, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.objects.get(name)
}

func (o *Object) attribute(name string) (*Attribute, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	a, ok := o.attrs[name]

	return a, ok
}
