package topic

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Branch kinds used as markers inside a Stack.
const (
	KindObjects    = "objects"
	KindAttributes = "attributes"
)

// ErrInvalidAddress is returned when a topic cannot be translated.
var ErrInvalidAddress = errors.New("invalid address")

// Stack is a location stack: alternating names and branch kinds, innermost first.
type Stack []string

// FromTopic converts a dotted topic into a Stack. If the first segment equals
// rootName it is dropped, unless raw is set.
func FromTopic(topic, rootName string, raw bool) (Stack, error) {
	if topic == "" {
		return nil, fmt.Errorf("%w: empty topic", ErrInvalidAddress)
	}

	levels := strings.Split(topic, ".")
	if slices.Contains(levels, "") {
		return nil, fmt.Errorf("%w: topic %q has an empty segment", ErrInvalidAddress, topic)
	}

	if !raw && rootName != "" && levels[0] == rootName {
		levels = levels[1:]
	}

	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: topic %q names only the node", ErrInvalidAddress, topic)
	}

	expanded := make([]string, 0, 2*len(levels))
	for i, level := range levels {
		if i < len(levels)-1 {
			expanded = append(expanded, KindObjects)
		} else {
			expanded = append(expanded, KindAttributes)
		}

		expanded = append(expanded, level)
	}

	slices.Reverse(expanded)

	return expanded, nil
}

// FromLegacy builds the fixed stack of an (objectName, attributeName) pair.
func FromLegacy(objectName, attributeName string) Stack {
	return Stack{attributeName, KindAttributes, objectName, KindObjects}
}

// Valid reports whether s satisfies the stack invariants.
func (s Stack) Valid() bool {
	if len(s) < 2 || len(s)%2 != 0 {
		return false
	}

	if s[1] != KindAttributes {
		return false
	}

	for i := 3; i < len(s); i += 2 {
		if s[i] != KindObjects {
			return false
		}
	}

	return true
}

// AttributeName returns the innermost name.
func (s Stack) AttributeName() string {
	if len(s) == 0 {
		return ""
	}

	return s[0]
}

// ObjectNames returns the names of the enclosing objects, innermost first.
func (s Stack) ObjectNames() []string {
	var names []string
	for i := 2; i+1 < len(s); i += 2 {
		names = append(names, s[i])
	}

	return names
}

// ParentName returns the name of the object directly enclosing the attribute.
func (s Stack) ParentName() string {
	if len(s) < 4 {
		return ""
	}

	return s[2]
}

// Outer returns the outermost (name, kind) pair and the remaining stack.
// The receiver is not modified.
func (s Stack) Outer() (name, kind string, rest Stack) {
	if len(s) < 2 {
		return "", "", nil
	}

	n := len(s)

	return s[n-2], s[n-1], s[:n-2:n-2]
}

// Clone returns an independent copy of s.
func (s Stack) Clone() Stack {
	return slices.Clone(s)
}

// Topic renders s back into dotted form (without any node prefix).
func (s Stack) Topic() string {
	parts := make([]string, 0, len(s)/2)
	for i := len(s) - 2; i >= 0; i -= 2 {
		parts = append(parts, s[i])
	}

	return strings.Join(parts, ".")
}

func (s Stack) String() string {
	return "[" + strings.Join(s, " ") + "]"
}
