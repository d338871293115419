// Package layout resolves a slide's layout archetype and owns the layout template catalog.
package layout

import (
	"errors"
	"fmt"
)

// ErrInsufficientPredictions is returned when fewer than two ranked predictions are supplied.
var ErrInsufficientPredictions = errors.New("at least two layout predictions are required")

// UnknownLayoutError is returned when a layout name has no matching template.
type UnknownLayoutError struct {
	Name string
}

func (e *UnknownLayoutError) Error() string {
	return fmt.Sprintf("layout template not found: %s", e.Name)
}

// TemplateError represents a template document that cannot be loaded or fails validation
type TemplateError struct {
	Source  string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("template %s: %s", e.Source, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
