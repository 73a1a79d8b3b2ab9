package glue

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"cloudio-glue/mapping"
	"cloudio-glue/topic"
	"cloudio-glue/tree"
	"cloudio-glue/tree/runtime"
)

// Connector binds one model to one node of the remote tree.
type Connector struct {
	model      any
	log        *slog.Logger
	factory    tree.Factory
	nodeName   string
	buildTree  bool
	converters *mapping.ConverterRegistry

	mapping  *mapping.Mapping
	buddy    tree.Node
	attached []tree.Attribute
	routes   []*route
	notified bool
}

var _ tree.Listener = (*Connector)(nil)

// New creates a connector for model. Models are usually pointers to structs,
// so that exported fields can be assigned by dispatch.
func New(model any, opts ...Option) *Connector {
	c := &Connector{
		model:      model,
		log:        slog.New(slog.DiscardHandler),
		factory:    runtime.Factory{},
		converters: mapping.DefaultConverters(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Model returns the bound model.
func (c *Connector) Model() any { return c.model }

// Mapping returns the current mapping, or nil.
func (c *Connector) Mapping() *mapping.Mapping { return c.mapping }

// Buddy returns the bound node, or nil.
func (c *Connector) Buddy() tree.Node { return c.buddy }

// SetMapping validates m and replaces the current mapping. Listeners attached
// for the previous mapping are removed. If a buddy is bound, the new mapping
// is wired right away.
func (c *Connector) SetMapping(m *mapping.Mapping) error {
	res := mapping.Validate(m, c.converters)
	if err := mapping.FirstError(res); err != nil {
		return err
	}

	for _, w := range res.Warnings() {
		c.log.Warn(w.Message, "binding", w.Binding, "code", w.Code, "hint", w.Hint)
	}

	if errs := c.converters.Bind(m); len(errs) > 0 {
		return errors.Join(errs...)
	}

	c.detach()
	c.mapping = m
	c.routes = nil

	if c.buddy != nil {
		c.wire()
	}

	return nil
}

// SetMappingFile applies the bindings of f. The node name of f is used by
// CreateNode unless WithNodeName was given.
func (c *Connector) SetMappingFile(f *mapping.File) error {
	if f == nil {
		return c.SetMapping(nil)
	}

	if c.nodeName == "" {
		c.nodeName = f.Node
	}

	return c.SetMapping(f.Bindings)
}

// SetBuddy binds node. A connector can be bound only once.
func (c *Connector) SetBuddy(node tree.Node) error {
	if node == nil {
		return errors.New("cloud.iO buddy must not be nil")
	}

	if c.buddy != nil {
		return ErrAlreadyBound
	}

	c.buddy = node

	if c.mapping != nil {
		c.wire()
	}

	return nil
}

// CreateNode creates a node for the model, builds every bound object and
// attribute in it, registers it at endpoint and binds it as buddy.
//
// Bindings that cannot be built do not stop the node from being registered:
// the node is returned together with their joined errors.
func (c *Connector) CreateNode(endpoint tree.Endpoint) (tree.Node, error) {
	if c.mapping == nil {
		c.log.Warn("attribute mapping needs to be initialized to create cloud.iO node")
		return nil, ErrNoMapping
	}

	if c.buddy != nil {
		return nil, ErrAlreadyBound
	}

	node := c.factory.NewNode()
	node.DeclareImplementedInterface(tree.NodeInterface)

	name := c.NodeName()
	node.SetName(name)

	buildErr := c.Build(node)

	if err := endpoint.AddNode(name, node); err != nil {
		return nil, fmt.Errorf("failed to add node %q: %w", name, err)
	}

	if err := c.SetBuddy(node); err != nil {
		return nil, err
	}

	if buildErr != nil {
		return node, fmt.Errorf("node %q is incomplete: %w", name, buildErr)
	}

	return node, nil
}

// NodeName returns the name CreateNode uses: the configured name, else the
// model's type name.
func (c *Connector) NodeName() string {
	if c.nodeName != "" {
		return c.nodeName
	}

	t := reflect.TypeOf(c.model)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Name() == "" {
		return "Model"
	}

	return t.Name()
}

// LocationStack computes the location stack of d. Topics starting with the
// buddy's name are stripped of it.
func (c *Connector) LocationStack(d *mapping.Descriptor) (topic.Stack, error) {
	root := ""
	if c.buddy != nil {
		root = c.buddy.Name()
	}

	return d.Stack(root)
}

func (c *Connector) wire() {
	if c.buildTree {
		c.Build(c.buddy)
	}

	for name, d := range c.mapping.All() {
		if !d.Constraints.Writable() {
			continue
		}

		stack, err := c.LocationStack(d)
		if err != nil {
			c.log.Warn("could not map to cloud.iO attribute", "binding", name, "topic", d.Address(), "error", err)
			continue
		}

		if len(stack) < 4 {
			c.log.Warn("could not map to cloud.iO attribute, attribute must be inside an object",
				"binding", name, "topic", d.Address())

			continue
		}

		c.routes = append(c.routes, c.newRoute(name, d, stack))

		attr, err := c.buddy.FindAttribute(stack)
		if err != nil {
			c.log.Warn("could not map to cloud.iO attribute, attribute not found",
				"binding", name, "topic", d.Address(),
				"object", stack.ParentName(), "attribute", stack.AttributeName(), "error", err)

			continue
		}

		if !slices.Contains(c.attached, attr) {
			attr.AddListener(c)
			c.attached = append(c.attached, attr)
		}
	}

	c.bindTracked()

	c.log.Debug("wired attribute mapping", "node", c.buddy.Name(),
		"bindings", c.mapping.Len(), "listeners", len(c.attached))

	if c.notified {
		return
	}

	c.notified = true

	if h, ok := c.model.(NodeCreatedHook); ok {
		h.OnNodeCreated()
	}
}

func (c *Connector) detach() {
	for _, attr := range c.attached {
		attr.RemoveListener(c)
	}

	c.attached = nil
}
