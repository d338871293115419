// Package types provides type definitions for structured data used throughout the slide-redesigner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation represents a single check failure on a redesigned slide
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`

	// Fields for tracking which slot caused the violation
	SlotIndex *int         `json:"slot_index,omitempty"`
	SlotType  *ElementType `json:"slot_type,omitempty"`
	CharCount *int         `json:"char_count,omitempty"`

	// Count is the number of items a content check refers to, e.g. dropped images
	Count *int `json:"count,omitempty"`
}

// Violations represents a collection of check failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// HasErrors reports whether any violation has error severity.
func (v *Violations) HasErrors() bool {
	for _, violation := range v.Violations {
		if violation.Severity == "error" {
			return true
		}
	}
	return false
}
