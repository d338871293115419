// Package typography derives font size and line spacing for bound text slots.
package typography

import "fmt"

// RulesError represents an inconsistent typography rule set.
type RulesError struct {
	Message string
}

func (e *RulesError) Error() string {
	return fmt.Sprintf("invalid typography rules: %s", e.Message)
}
