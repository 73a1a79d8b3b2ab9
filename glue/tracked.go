package glue

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"cloudio-glue/internal/match"
	"cloudio-glue/primitive"
)

// Publisher receives the values of tracked attributes. Connector implements it.
type Publisher interface {
	PushAttribute(name string, value any, force bool) error
}

// ChangeFunc observes a tracked attribute.
type ChangeFunc func(name string, value any)

// Tracked is a model attribute that publishes every local change.
//
//	type Heater struct {
//		Power *glue.Tracked[bool]
//	}
//
// A connector binds the Tracked fields of its model when it is wired; the
// binding name becomes the tracked name. Tracked values are safe for
// concurrent use.
type Tracked[T any] struct {
	mu        sync.RWMutex
	name      string
	value     T
	publisher Publisher
	observers []ChangeFunc
}

var (
	_ Snapshotter = (*Tracked[int])(nil)
	_ Assigner    = (*Tracked[int])(nil)
)

// Track creates a tracked attribute holding initial.
func Track[T any](name string, initial T) *Tracked[T] {
	return &Tracked[T]{name: name, value: initial}
}

// Name returns the binding name.
func (t *Tracked[T]) Name() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.name
}

// Bind sets the publisher local changes are pushed to.
func (t *Tracked[T]) Bind(p Publisher) *Tracked[T] {
	t.mu.Lock()
	t.publisher = p
	t.mu.Unlock()

	return t
}

// OnChange registers fn to be called after every change, local or remote.
func (t *Tracked[T]) OnChange(fn ChangeFunc) {
	t.mu.Lock()
	t.observers = append(t.observers, fn)
	t.mu.Unlock()
}

func (t *Tracked[T]) Get() T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.value
}

// Set stores v, notifies the observers and publishes v. The value is stored
// even if no publisher is bound, in which case ErrUnbound is returned.
func (t *Tracked[T]) Set(v T) error {
	name, publisher := t.store(v)

	if publisher == nil {
		return fmt.Errorf("%w: %q", ErrUnbound, name)
	}

	return publisher.PushAttribute(name, v, false)
}

// Assign stores a value received from the remote tree without publishing it.
func (t *Tracked[T]) Assign(v any) error {
	rv, err := primitive.Convert(v, reflect.TypeFor[T]())
	if err != nil {
		return err
	}

	val, _ := rv.Interface().(T)
	t.store(val)

	return nil
}

// Snapshot returns the current value for publishing.
func (t *Tracked[T]) Snapshot() any {
	return t.Get()
}

func (t *Tracked[T]) String() string {
	return fmt.Sprint(t.Get())
}

func (t *Tracked[T]) store(v T) (string, Publisher) {
	t.mu.Lock()
	t.value = v
	name, publisher := t.name, t.publisher
	observers := slices.Clone(t.observers)
	t.mu.Unlock()

	for _, fn := range observers {
		fn(name, v)
	}

	return name, publisher
}

func (t *Tracked[T]) attach(name string, p Publisher) {
	t.mu.Lock()
	t.name, t.publisher = name, p
	t.mu.Unlock()
}

type trackedBinder interface {
	attach(name string, p Publisher)
}

// bindTracked attaches every Tracked field of the model named after a
// pushable binding to the connector.
func (c *Connector) bindTracked() {
	s := reflect.Indirect(reflect.ValueOf(c.model))
	if s.Kind() != reflect.Struct {
		return
	}

	for name, d := range c.mapping.All() {
		if !d.Constraints.Pushable() {
			continue
		}

		exported := match.ExportedName(name)
		if exported == "" {
			continue
		}

		f := s.FieldByName(exported)
		if !f.IsValid() || !f.CanInterface() || (f.Kind() == reflect.Pointer && f.IsNil()) {
			continue
		}

		b, ok := f.Interface().(trackedBinder)
		if !ok && f.CanAddr() {
			b, ok = f.Addr().Interface().(trackedBinder)
		}

		if ok {
			b.attach(name, c)
			c.log.Debug("bound tracked attribute", "binding", name)
		}
	}
}
