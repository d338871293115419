// Package pipeline orchestrates the per-slide redesign stages and fans a deck out across workers.
package pipeline

import "fmt"

// SlideError wraps a fatal error with the slide and stage it occurred in.
type SlideError struct {
	SlideNum int
	Stage    Stage
	Cause    error
}

func (e *SlideError) Error() string {
	return fmt.Sprintf("slide %d: %s failed: %v", e.SlideNum, e.Stage, e.Cause)
}

func (e *SlideError) Unwrap() error {
	return e.Cause
}

// LoadError represents an input artifact that cannot be read, decoded or validated.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
