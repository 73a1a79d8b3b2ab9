package runtime

import (
	"fmt"

	"cloudio-glue/topic"
	"cloudio-glue/tree"
)

// children is an ordered set of named objects.
type children struct {
	names   []string
	objects map[string]*Object
}

func (c *children) get(name string) (*Object, bool) {
	o, ok := c.objects[name]
	return o, ok
}

func (c *children) add(name string, parent tree.Container, obj tree.Object) error {
	o, ok := obj.(*Object)
	if !ok {
		return fmt.Errorf("object %q: unsupported implementation %T", name, obj)
	}

	if _, exists := c.objects[name]; exists {
		return fmt.Errorf("object %q: %w", name, tree.ErrExists)
	}

	if c.objects == nil {
		c.objects = make(map[string]*Object)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.parent != nil {
		return fmt.Errorf("object %q: already attached as %q", name, o.name)
	}

	o.name, o.parent = name, parent

	c.names = append(c.names, name)
	c.objects[name] = o

	return nil
}

func (c *children) list() []tree.Object {
	out := make([]tree.Object, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.objects[name])
	}

	return out
}

// childLookup is implemented by Node and Object.
type childLookup interface {
	child(name string) (*Object, bool)
}

// findObject resolves an objects-only stack, outermost pair first.
func findObject(from childLookup, stack topic.Stack) (*Object, bool) {
	if len(stack) < 2 || len(stack)%2 != 0 {
		return nil, false
	}

	for {
		name, kind, rest := stack.Outer()
		if kind != topic.KindObjects {
			return nil, false
		}

		o, ok := from.child(name)
		if !ok {
			return nil, false
		}

		if len(rest) == 0 {
			return o, true
		}

		from, stack = o, rest
	}
}

// findAttribute resolves a full location stack.
func findAttribute(from childLookup, stack topic.Stack) (*Attribute, error) {
	if !stack.Valid() {
		return nil, fmt.Errorf("stack %s: %w", stack, tree.ErrNotFound)
	}

	if len(stack) == 2 {
		o, ok := from.(*Object)
		if !ok {
			return nil, fmt.Errorf("attribute %q outside of an object: %w", stack.AttributeName(), tree.ErrNotFound)
		}

		a, ok := o.attribute(stack.AttributeName())
		if !ok {
			return nil, fmt.Errorf("attribute %q: %w", stack.AttributeName(), tree.ErrNotFound)
		}

		return a, nil
	}

	o, ok := findObject(from, stack[2:])
	if !ok {
		return nil, fmt.Errorf("object %q: %w", topic.Stack(stack[2:]).Topic(), tree.ErrNotFound)
	}

	return findAttribute(o, stack[:2])
}
