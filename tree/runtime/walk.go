package runtime

import (
	"fmt"
	"io"
	"strings"

	"cloudio-glue/tree"
)

// WalkFunc is called for every object and attribute below the walk root.
// Exactly one of obj and attr is non-nil. depth is 0 for direct children.
type WalkFunc func(depth int, obj tree.Object, attr tree.Attribute) error

// Walk visits the subtree of c depth first, objects before their
// attributes, in insertion order. It stops at the first error.
func Walk(c tree.Container, fn WalkFunc) error {
	return walk(c, 0, fn)
}

func walk(c tree.Container, depth int, fn WalkFunc) error {
	for _, o := range c.Objects() {
		if err := fn(depth, o, nil); err != nil {
			return err
		}

		for _, a := range o.Attributes() {
			if err := fn(depth+1, nil, a); err != nil {
				return err
			}
		}

		if err := walk(o, depth+1, fn); err != nil {
			return err
		}
	}

	return nil
}

// Fprint writes an indented listing of node to w.
func Fprint(w io.Writer, node tree.Node) error {
	header := node.Name()
	if ifaces := node.Interfaces(); len(ifaces) > 0 {
		header += " (" + strings.Join(ifaces, ", ") + ")"
	}

	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	return Walk(node, func(depth int, obj tree.Object, attr tree.Attribute) error {
		indent := strings.Repeat("  ", depth+1)

		var err error
		if obj != nil {
			_, err = fmt.Fprintf(w, "%s%s/\n", indent, obj.Name())
		} else {
			_, err = fmt.Fprintf(w, "%s%s: %s = %v\n", indent, attr.Name(), attr.Type(), attr.Value())
		}

		return err
	})
}
