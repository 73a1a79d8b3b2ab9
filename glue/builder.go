package glue

import (
	"errors"
	"fmt"

	"cloudio-glue/mapping"
	"cloudio-glue/topic"
	"cloudio-glue/tree"
)

// BuildObject walks the objects part of stack from the outermost branch
// inwards, creating every missing object below container. It returns the
// innermost object, or container itself when stack addresses an attribute
// directly.
func (c *Connector) BuildObject(container tree.Container, stack topic.Stack) (tree.Container, error) {
	if len(stack) < 2 {
		return container, nil
	}

	name, kind, rest := stack.Outer()
	if kind != topic.KindObjects {
		return container, nil
	}

	child, ok := container.FindObject(topic.Stack{name, topic.KindObjects})
	if !ok {
		child = c.factory.NewObject()
		if err := container.AddObject(name, child); err != nil {
			return nil, fmt.Errorf("failed to add object %q: %w", name, err)
		}
	}

	return c.BuildObject(child, rest)
}

// Build makes sure the objects and attributes of every binding exist below
// node. Existing branches are reused, so building twice changes nothing.
// Failing bindings are logged and skipped; their errors are returned joined.
func (c *Connector) Build(node tree.Node) error {
	var errs []error

	for name, d := range c.mapping.All() {
		if err := c.buildBinding(node, d); err != nil {
			c.log.Warn("could not create cloud.iO attribute", "binding", name, "topic", d.Address(), "error", err)
			errs = append(errs, fmt.Errorf("binding %q: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

func (c *Connector) buildBinding(node tree.Node, d *mapping.Descriptor) error {
	stack, err := d.Stack(node.Name())
	if err != nil {
		return err
	}

	if !d.Type.IsValid() {
		c.log.Debug("no attribute type, skipped", "topic", d.Address())
		return nil
	}

	parent, err := c.BuildObject(node, stack)
	if err != nil {
		return err
	}

	obj, ok := parent.(tree.Object)
	if !ok {
		return fmt.Errorf("%w: attribute %q must be inside an object", ErrAddressResolution, stack.AttributeName())
	}

	attr, err := obj.FindAttribute(stack[:2])
	switch {
	case err == nil:
		if attr.Type() != d.Type {
			c.log.Warn("cloud.iO attribute exists with another type",
				"topic", d.Address(), "type", attr.Type(), "want", d.Type)
		}

		return nil
	case errors.Is(err, tree.ErrNotFound):
		_, err = obj.AddAttribute(stack.AttributeName(), d.Type)
		return err
	default:
		return err
	}
}
