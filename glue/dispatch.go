package glue

import (
	"fmt"
	"reflect"
	"strings"

	"cloudio-glue/internal/match"
	"cloudio-glue/mapping"
	"cloudio-glue/primitive"
	"cloudio-glue/topic"
	"cloudio-glue/tree"
)

const genericHook = "OnAttributeSetFromCloud"

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// route is the resolved inbound side of one write binding.
type route struct {
	name       string
	descriptor *mapping.Descriptor
	stack      topic.Stack
	candidates []candidate
}

// candidate is one entry of a dispatch table. Exactly one of method and
// field is valid. Candidates with err set are never invoked.
type candidate struct {
	strategy StrategyEnum
	member   string
	method   reflect.Value
	field    reflect.Value
	err      *SignatureError
}

func (c *Connector) newRoute(name string, d *mapping.Descriptor, stack topic.Stack) *route {
	r := &route{
		name:       name,
		descriptor: d,
		stack:      stack,
		candidates: resolveCandidates(c.model, name),
	}

	strategies := make([]string, 0, len(r.candidates))
	for _, cand := range r.candidates {
		strategies = append(strategies, cand.strategy.String()+":"+cand.member)
	}

	c.log.Debug("resolved dispatch table", "binding", name, "candidates", strings.Join(strategies, ","))

	return r
}

// resolveCandidates builds the dispatch table of binding in priority order.
func resolveCandidates(model any, binding string) []candidate {
	v := reflect.ValueOf(model)
	if !v.IsValid() {
		return nil
	}

	var out []candidate

	if m := v.MethodByName(genericHook); m.IsValid() {
		out = append(out, methodCandidate(StrategyGenericHook, genericHook, m, 2))
	}

	exported := match.ExportedName(binding)
	if exported == "" {
		return out
	}

	specific := "On" + exported + "SetFromCloud"
	if m := v.MethodByName(specific); m.IsValid() {
		out = append(out, methodCandidate(StrategySpecificHook, specific, m, 1))
	}

	if m := v.MethodByName(exported); m.IsValid() && !isGetter(m.Type()) {
		out = append(out, methodCandidate(StrategyDirectMethod, exported, m, 1))
	}

	setter := "Set" + exported
	if m := v.MethodByName(setter); m.IsValid() {
		out = append(out, methodCandidate(StrategyConventionSetter, setter, m, 1))
	}

	if s := reflect.Indirect(v); s.Kind() == reflect.Struct {
		if f := s.FieldByName(exported); f.IsValid() && f.CanSet() {
			out = append(out, candidate{strategy: StrategyFieldAssignment, member: exported, field: f})
		}
	}

	return out
}

func methodCandidate(s StrategyEnum, name string, m reflect.Value, given int) candidate {
	c := candidate{strategy: s, member: name, method: m}
	if t := m.Type(); !acceptsArgs(t, given) {
		c.err = &SignatureError{Method: name, Want: t.NumIn(), Given: given}
	}

	return c
}

func acceptsArgs(t reflect.Type, n int) bool {
	if t.IsVariadic() {
		return n >= t.NumIn()-1
	}

	return t.NumIn() == n
}

// isGetter reports whether t looks like func() T, which outbound reads and
// dispatch leaves alone.
func isGetter(t reflect.Type) bool {
	return t.NumIn() == 0 && t.NumOut() > 0
}

func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}

	return t.In(i)
}

// invoke applies value through the candidate. Errors returned by the callee,
// failed conversions and (outside of hooks) panics are reported as errors.
func (c candidate) invoke(binding string, attr tree.Attribute, value any) (err error) {
	if !c.strategy.IsHook() {
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("%s panicked: %v", c.member, p)
			}
		}()
	}

	if c.strategy == StrategyFieldAssignment {
		return assign(c.field, value)
	}

	args := []any{value}
	if c.strategy == StrategyGenericHook {
		args = []any{binding, attr}
	}

	return call(c.method, args)
}

func call(m reflect.Value, args []any) error {
	t := m.Type()

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		rv, err := primitive.Convert(arg, paramType(t, i))
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}

		in[i] = rv
	}

	out := m.Call(in)
	if n := len(out); n > 0 && t.Out(n-1) == errorType && !out[n-1].IsNil() {
		return out[n-1].Interface().(error)
	}

	return nil
}

func assign(f reflect.Value, value any) error {
	if a, ok := assigner(f); ok {
		return a.Assign(value)
	}

	rv, err := primitive.Convert(value, f.Type())
	if err != nil {
		return err
	}

	f.Set(rv)

	return nil
}

func assigner(f reflect.Value) (Assigner, bool) {
	if f.Kind() == reflect.Pointer && f.IsNil() {
		return nil, false
	}

	if a, ok := f.Interface().(Assigner); ok {
		return a, true
	}

	if f.CanAddr() {
		if a, ok := f.Addr().Interface().(Assigner); ok {
			return a, true
		}
	}

	return nil, false
}

// memberNames lists the exported methods and fields of model, used for
// suggestions.
func memberNames(model any) []string {
	v := reflect.ValueOf(model)
	if !v.IsValid() {
		return nil
	}

	var names []string

	t := v.Type()
	for i := range t.NumMethod() {
		names = append(names, t.Method(i).Name)
	}

	if s := reflect.Indirect(v); s.Kind() == reflect.Struct {
		for _, f := range reflect.VisibleFields(s.Type()) {
			if f.IsExported() && !f.Anonymous {
				names = append(names, f.Name)
			}
		}
	}

	return names
}
