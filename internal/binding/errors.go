// Package binding splits a slide's shapes into content streams and binds them onto layout slots.
package binding

import "fmt"

// Error represents input the binder cannot work with, such as a missing
// template or an unknown distribution policy.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("binding error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("binding error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
