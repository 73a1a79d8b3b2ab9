package runtime

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"cloudio-glue/primitive"
	"cloudio-glue/tree"
)

// Attribute is the in-memory tree.Attribute.
type Attribute struct {
	name   string
	parent *Object
	typ    primitive.TypeEnum

	mu        sync.RWMutex
	value     any
	listeners []tree.Listener
}

var _ tree.Attribute = (*Attribute)(nil)

func (a *Attribute) Name() string { return a.name }

func (a *Attribute) Parent() tree.Object { return a.parent }

func (a *Attribute) Type() primitive.TypeEnum { return a.typ }

func (a *Attribute) Value() any {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.value
}

// SetValue stores v and hands it to the endpoint's publish hook, if the
// attribute belongs to a node registered at an endpoint.
func (a *Attribute) SetValue(v any) error {
	n, err := a.store(v)
	if err != nil {
		return err
	}

	if e := a.endpoint(); e != nil {
		e.publish(Topic(a), n)
	}

	return nil
}

// SetValueFromCloud stores v and notifies the listeners. It reports whether
// any listener applied the change.
func (a *Attribute) SetValueFromCloud(v any) (bool, error) {
	if _, err := a.store(v); err != nil {
		return false, err
	}

	a.mu.RLock()
	listeners := slices.Clone(a.listeners)
	a.mu.RUnlock()

	handled := false
	for _, l := range listeners {
		if l.AttributeHasChanged(a, true) {
			handled = true
		}
	}

	return handled, nil
}

func (a *Attribute) AddListener(l tree.Listener) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.listeners = append(a.listeners, l)
}

func (a *Attribute) RemoveListener(l tree.Listener) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.listeners = slices.DeleteFunc(a.listeners, func(x tree.Listener) bool { return x == l })
}

// Listeners returns the number of registered listeners.
func (a *Attribute) Listeners() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.listeners)
}

func (a *Attribute) String() string {
	return fmt.Sprintf("%s: %s = %v", a.name, a.typ, a.Value())
}

func (a *Attribute) store(v any) (any, error) {
	n, err := primitive.Normalize(a.typ, v)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", a.name, err)
	}

	a.mu.Lock()
	a.value = n
	a.mu.Unlock()

	return n, nil
}

func (a *Attribute) endpoint() *Endpoint {
	var c tree.Container = a.parent
	for {
		switch p := c.(type) {
		case *Object:
			c = p.Parent()
		case *Node:
			return p.publisher()
		default:
			return nil
		}
	}
}

// Topic returns the dotted address of attr including the node name.
func Topic(attr tree.Attribute) string {
	parts := []string{attr.Name()}

	var c tree.Container
	if p := attr.Parent(); p != nil {
		c = p
	}

	for c != nil {
		parts = append(parts, c.Name())

		o, ok := c.(tree.Object)
		if !ok {
			break
		}

		c = o.Parent()
	}

	slices.Reverse(parts)

	return strings.Join(parts, ".")
}
