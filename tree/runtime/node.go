package runtime

import (
	"slices"
	"sync"

	"cloudio-glue/tree"
)

// Node is the in-memory tree.Node.
type Node struct {
	mu         sync.RWMutex
	name       string
	interfaces []string
	objects    children
	endpoint   *Endpoint
}

var _ tree.Node = (*Node)(nil)

// NewNode creates an empty node.
func NewNode(name string) *Node {
	return &Node{name: name}
}

func (n *Node) Name() string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.name
}

func (n *Node) SetName(name string) {
	n.mu.Lock()
	n.name = name
	n.mu.Unlock()
}

// DeclareImplementedInterface records name once.
func (n *Node) DeclareImplementedInterface(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !slices.Contains(n.interfaces, name) {
		n.interfaces = append(n.interfaces, name)
	}
}

func (n *Node) Interfaces() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return slices.Clone(n.interfaces)
}

func (n *Node) FindObject(stack []string) (tree.Object, bool) {
	o, ok := findObject(n, stack)
	if !ok {
		return nil, false
	}

	return o, true
}

func (n *Node) AddObject(name string, obj tree.Object) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.objects.add(name, n, obj)
}

func (n *Node) FindAttribute(stack []string) (tree.Attribute, error) {
	a, err := findAttribute(n, stack)
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (n *Node) Objects() []tree.Object {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.objects.list()
}

func (n *Node) child(name string) (*Object, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.objects.get(name)
}

func (n *Node) attach(e *Endpoint) {
	n.mu.Lock()
	n.endpoint = e
	n.mu.Unlock()
}

func (n *Node) publisher() *Endpoint {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.endpoint
}
