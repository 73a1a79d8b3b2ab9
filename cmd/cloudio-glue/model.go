package main

import (
	"fmt"
	"io"

	"cloudio-glue/glue"
	"cloudio-glue/mapping"
	"cloudio-glue/tree"
	"cloudio-glue/tree/runtime"
)

const defaultNodeName = "node"

// echoModel accepts every remote write and reports it.
type echoModel struct {
	out io.Writer
}

func (m *echoModel) OnAttributeSetFromCloud(name string, attr tree.Attribute) {
	fmt.Fprintf(m.out, "%s <- %v\n", name, attr.Value())
}

// loadNode builds a connector for path around model and creates its node on
// a fresh endpoint.
func (a *app) loadNode(path, nodeName string, model any) (*runtime.Endpoint, tree.Node, error) {
	f, err := mapping.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	if nodeName == "" && f.Node == "" {
		nodeName = defaultNodeName
	}

	opts := []glue.Option{glue.WithLogger(a.log)}
	if nodeName != "" {
		opts = append(opts, glue.WithNodeName(nodeName))
	}

	c := glue.New(model, opts...)
	if err := c.SetMappingFile(f); err != nil {
		return nil, nil, err
	}

	endpoint := runtime.NewEndpoint()

	node, err := c.CreateNode(endpoint)
	if node == nil {
		return nil, nil, err
	}

	if err != nil {
		a.log.Warn("node built with errors", "node", node.Name(), "error", err)
	}

	return endpoint, node, nil
}
