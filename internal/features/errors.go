// Package features computes the structural feature vector of a slide.
package features

import "fmt"

// MissingFeatureError is returned when a required model input column is absent.
type MissingFeatureError struct {
	Feature string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("missing feature: %s", e.Feature)
}

// MetadataError represents a slide metadata file that exists but cannot be read or decoded.
type MetadataError struct {
	Path    string
	Message string
	Cause   error
}

func (e *MetadataError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("slide metadata %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("slide metadata %s: %s", e.Path, e.Message)
}

func (e *MetadataError) Unwrap() error {
	return e.Cause
}
