package glue

// NodeCreatedHook is implemented by models that want to know when the
// binding to their node is complete.
type NodeCreatedHook interface {
	OnNodeCreated()
}

// DataValidator is implemented by models whose values are not always worth
// publishing. Push does nothing while HasValidData returns false.
type DataValidator interface {
	HasValidData() bool
}

// Snapshotter is implemented by field types whose published value differs
// from the field itself, like Tracked.
type Snapshotter interface {
	Snapshot() any
}

// Assigner is implemented by field types accepting inbound values, like
// Tracked. Assign must not publish.
type Assigner interface {
	Assign(v any) error
}

func hasValidData(model any) bool {
	if v, ok := model.(DataValidator); ok {
		return v.HasValidData()
	}

	return true
}
