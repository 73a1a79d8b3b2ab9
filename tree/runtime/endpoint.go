package runtime

import (
	"fmt"
	"strings"
	"sync"

	"cloudio-glue/topic"
	"cloudio-glue/tree"
)

// PublishFunc receives every local write, addressed by its full topic.
type PublishFunc func(topic string, value any)

// Endpoint is the in-memory tree.Endpoint.
type Endpoint struct {
	mu        sync.RWMutex
	names     []string
	nodes     map[string]*Node
	onPublish PublishFunc
}

var _ tree.Endpoint = (*Endpoint)(nil)

// NewEndpoint creates an endpoint without nodes.
func NewEndpoint() *Endpoint {
	return &Endpoint{nodes: make(map[string]*Node)}
}

// OnPublish installs the publish hook. Passing nil removes it.
func (e *Endpoint) OnPublish(fn PublishFunc) {
	e.mu.Lock()
	e.onPublish = fn
	e.mu.Unlock()
}

// AddNode names node and registers it.
func (e *Endpoint) AddNode(name string, node tree.Node) error {
	n, ok := node.(*Node)
	if !ok {
		return fmt.Errorf("node %q: unsupported implementation %T", name, node)
	}

	if name == "" || strings.Contains(name, ".") {
		return fmt.Errorf("node %q: %w", name, topic.ErrInvalidAddress)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.nodes[name]; exists {
		return fmt.Errorf("node %q: %w", name, tree.ErrExists)
	}

	if e.nodes == nil {
		e.nodes = make(map[string]*Node)
	}

	n.SetName(name)
	n.attach(e)

	e.names = append(e.names, name)
	e.nodes[name] = n

	return nil
}

// Node returns the node registered under name.
func (e *Endpoint) Node(name string) (*Node, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	n, ok := e.nodes[name]

	return n, ok
}

// Nodes returns the registered nodes in registration order.
func (e *Endpoint) Nodes() []*Node {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*Node, 0, len(e.names))
	for _, name := range e.names {
		out = append(out, e.nodes[name])
	}

	return out
}

// Attribute resolves a full topic, starting with the node name.
func (e *Endpoint) Attribute(t string) (*Attribute, error) {
	nodeName, _, _ := strings.Cut(t, ".")

	n, ok := e.Node(nodeName)
	if !ok {
		return nil, fmt.Errorf("node %q: %w", nodeName, tree.ErrNotFound)
	}

	stack, err := topic.FromTopic(t, nodeName, false)
	if err != nil {
		return nil, err
	}

	return findAttribute(n, stack)
}

func (e *Endpoint) publish(t string, value any) {
	e.mu.RLock()
	fn := e.onPublish
	e.mu.RUnlock()

	if fn != nil {
		fn(t, value)
	}
}

// Factory creates in-memory nodes and objects.
type Factory struct{}

var _ tree.Factory = Factory{}

func (Factory) NewNode() tree.Node { return &Node{} }

func (Factory) NewObject() tree.Object { return NewObject() }
