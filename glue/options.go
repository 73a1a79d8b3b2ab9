package glue

import (
	"log/slog"

	"cloudio-glue/mapping"
	"cloudio-glue/tree"
)

// Option configures a Connector.
type Option func(*Connector)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *Connector) {
		if l != nil {
			c.log = l
		}
	}
}

// WithFactory sets the factory used to create missing nodes and objects.
func WithFactory(f tree.Factory) Option {
	return func(c *Connector) {
		c.factory = f
	}
}

// WithNodeName sets the name CreateNode registers the node under.
func WithNodeName(name string) Option {
	return func(c *Connector) {
		c.nodeName = name
	}
}

// WithTreeBuilding makes wiring create missing objects and attributes in
// the buddy before listeners are attached.
func WithTreeBuilding() Option {
	return func(c *Connector) {
		c.buildTree = true
	}
}

// WithConverters sets the registry converter names are resolved against.
func WithConverters(r *mapping.ConverterRegistry) Option {
	return func(c *Connector) {
		if r != nil {
			c.converters = r
		}
	}
}
