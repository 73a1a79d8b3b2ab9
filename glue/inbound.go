package glue

import (
	"cloudio-glue/internal/match"
	"cloudio-glue/tree"
)

// AttributeHasChanged applies a remote change of attr to the model. It
// reports whether a write binding matched attr and one of its dispatch
// candidates applied the value.
func (c *Connector) AttributeHasChanged(attr tree.Attribute, fromCloud bool) bool {
	if attr == nil {
		return false
	}

	r := c.resolve(attr)
	if r == nil {
		return false
	}

	value := attr.Value()

	for _, cand := range r.candidates {
		if cand.err != nil {
			c.log.Error(cand.err.Error(), "binding", r.name, "callback", cand.member)
			continue
		}

		if err := cand.invoke(r.name, attr, value); err != nil {
			c.log.Error("callback failed", "binding", r.name, "callback", cand.member, "error", err)
			continue
		}

		c.log.Info("cloud.iO @set attribute", "binding", r.name, "value", value,
			"callback", cand.member, "from_cloud", fromCloud)

		return true
	}

	args := []any{"attribute", attr.Name(), "binding", r.name}
	if s, ok := match.Suggest(match.ExportedName(r.name), memberNames(c.model), match.DefaultSuggestThreshold); ok {
		args = append(args, "suggestion", s)
	}

	c.log.Info("did not find attribute", args...)

	return false
}

// resolve returns the first write binding whose location stack names attr
// and its enclosing objects.
func (c *Connector) resolve(attr tree.Attribute) *route {
	for _, r := range c.routes {
		if r.matches(attr) {
			return r
		}
	}

	return nil
}

func (r *route) matches(attr tree.Attribute) bool {
	if attr.Name() != r.stack.AttributeName() {
		return false
	}

	var parent tree.Container
	if p := attr.Parent(); p != nil {
		parent = p
	}

	for _, name := range r.stack.ObjectNames() {
		obj, ok := parent.(tree.Object)
		if !ok || obj.Name() != name {
			return false
		}

		parent = obj.Parent()
	}

	// the outermost object must sit directly under the node
	_, nested := parent.(tree.Object)

	return !nested
}
