package glue

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyBound is returned when a buddy is set twice.
	ErrAlreadyBound = errors.New("cloud.iO buddy can be set only once")

	// ErrAddressResolution is returned when a binding does not resolve in the tree.
	ErrAddressResolution = errors.New("address does not resolve")

	// ErrSignature is wrapped by SignatureError.
	ErrSignature = errors.New("callback signature mismatch")

	// ErrNoMapping is returned by CreateNode when no mapping is set.
	ErrNoMapping = errors.New("attribute mapping needs to be initialized")

	// ErrUnbound is returned by Tracked.Set when no publisher is bound.
	ErrUnbound = errors.New("tracked attribute is not bound")
)

// SignatureError reports a hook whose parameter count does not fit the call
// dispatch would make.
type SignatureError struct {
	Method string
	Want   int // declared parameters
	Given  int // arguments dispatch passes
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("%s() takes %d %s but %d %s given",
		e.Method, e.Want, plural(e.Want, "argument", "arguments"), e.Given, plural(e.Given, "was", "were"))
}

func (e *SignatureError) Unwrap() error {
	return ErrSignature
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
