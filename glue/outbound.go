package glue

import (
	"errors"
	"fmt"
	"reflect"

	"cloudio-glue/internal/match"
	"cloudio-glue/primitive"
)

var errMemberNotFound = errors.New("member not found in model")

// Push publishes the values of all read and static bindings, read from
// source (the model when source is nil). Values equal to the remote value
// are not written unless force is set. Nothing is pushed while the model
// reports invalid data.
//
// Bindings failing to resolve are logged and skipped. Errors of the
// remaining bindings are logged and returned joined.
//
// Push is not safe for concurrent use.
func (c *Connector) Push(source any, force bool) error {
	if c.buddy == nil || c.mapping == nil {
		return nil
	}

	if !hasValidData(c.model) {
		c.log.Debug("model has no valid data, push skipped")
		return nil
	}

	if source == nil {
		source = c.model
	}

	var errs []error

	for name, d := range c.mapping.All() {
		if !d.Constraints.Pushable() {
			continue
		}

		value, err := readMember(source, name)
		if err != nil {
			args := []any{"binding", name, "error", err}
			if s, ok := match.Suggest(match.ExportedName(name), memberNames(source), match.DefaultSuggestThreshold); ok {
				args = append(args, "suggestion", s)
			}

			c.log.Warn("attribute in model not found", args...)

			continue
		}

		if err := c.PushAttribute(name, value, force); err != nil {
			c.log.Error("failed to push attribute", "binding", name, "error", err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// ForcePush publishes all read and static bindings regardless of the remote
// values.
func (c *Connector) ForcePush(source any) error {
	return c.Push(source, true)
}

// PushAttribute publishes value for the binding name. The value is converted
// by the binding's converter and written only if force is set or it differs
// from the remote value.
func (c *Connector) PushAttribute(name string, value any, force bool) error {
	if err := primitive.CheckValue(value); err != nil {
		return fmt.Errorf("binding %q: %w", name, err)
	}

	if c.buddy == nil || c.mapping == nil || (!force && !hasValidData(c.model)) {
		return nil
	}

	d, ok := c.mapping.Get(name)
	if !ok {
		args := []any{"binding", name}
		if s, ok := match.Suggest(name, c.mapping.Names(), match.DefaultSuggestThreshold); ok {
			args = append(args, "suggestion", s)
		}

		c.log.Warn("did not find cloud.iO mapping for model attribute", args...)

		return nil
	}

	if !d.Constraints.Pushable() {
		c.log.Debug("binding is not published", "binding", name, "constraints", d.Constraints)
		return nil
	}

	stack, err := c.LocationStack(d)
	if err != nil {
		c.log.Warn("did not find cloud.iO attribute for model attribute", "binding", name, "error", err)
		return nil
	}

	attr, err := c.buddy.FindAttribute(stack)
	if err != nil {
		c.log.Warn("did not find cloud.iO attribute for model attribute",
			"binding", name, "topic", d.Address(), "error", err)

		return nil
	}

	converted := d.Convert(value)
	if err := primitive.CheckValue(converted); err != nil {
		return fmt.Errorf("binding %q: converter: %w", name, err)
	}

	if !force && primitive.Equal(converted, attr.Value()) {
		c.log.Debug("value unchanged, not published", "binding", name, "value", converted)
		return nil
	}

	if err := attr.SetValue(converted); err != nil {
		return fmt.Errorf("binding %q: %w", name, err)
	}

	return nil
}

// readMember reads the value of binding from source: a Get<Name> or <Name>
// getter, else the exported field <Name>.
func readMember(source any, binding string) (any, error) {
	exported := match.ExportedName(binding)
	if exported == "" {
		return nil, fmt.Errorf("%w: %q is not a Go identifier", errMemberNotFound, binding)
	}

	v := reflect.ValueOf(source)
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: %s", errMemberNotFound, exported)
	}

	for _, name := range []string{"Get" + exported, exported} {
		m := v.MethodByName(name)
		if !m.IsValid() || !isGetter(m.Type()) {
			continue
		}

		t := m.Type()
		if t.NumOut() > 2 || (t.NumOut() == 2 && t.Out(1) != errorType) {
			continue
		}

		out := m.Call(nil)
		if len(out) == 2 && !out[1].IsNil() {
			return nil, fmt.Errorf("%s: %w", name, out[1].Interface().(error))
		}

		return out[0].Interface(), nil
	}

	s := reflect.Indirect(v)
	if s.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", errMemberNotFound, exported)
	}

	f := s.FieldByName(exported)
	if !f.IsValid() || !f.CanInterface() {
		return nil, fmt.Errorf("%w: %s", errMemberNotFound, exported)
	}

	if sn, ok := snapshotter(f); ok {
		return sn.Snapshot(), nil
	}

	return f.Interface(), nil
}

func snapshotter(f reflect.Value) (Snapshotter, bool) {
	if f.Kind() == reflect.Pointer && f.IsNil() {
		return nil, false
	}

	if sn, ok := f.Interface().(Snapshotter); ok {
		return sn, true
	}

	if f.CanAddr() {
		if sn, ok := f.Addr().Interface().(Snapshotter); ok {
			return sn, true
		}
	}

	return nil, false
}
