// Package types provides type definitions for structured data used throughout the slide-redesigner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// ElementType is the content type a slot accepts.
type ElementType string

const (
	ElementText  ElementType = "text"
	ElementImage ElementType = "image"
	ElementTable ElementType = "table"
)

// Prediction is one ranked classifier guess.
type Prediction struct {
	Layout     string  `json:"layout" validate:"required"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
}

// SlidePredictions binds a ranked prediction list to a slide number.
type SlidePredictions struct {
	SlideNum    int          `json:"slide_num"`
	Predictions []Prediction `json:"predictions"`
}

// PredictionSet holds classifier output for a whole deck.
type PredictionSet struct {
	Slides []SlidePredictions `json:"slides"`
}

// ForSlide returns the predictions recorded for slideNum, or nil.
func (ps *PredictionSet) ForSlide(slideNum int) []Prediction {
	if ps == nil {
		return nil
	}
	for _, s := range ps.Slides {
		if s.SlideNum == slideNum {
			return s.Predictions
		}
	}
	return nil
}

// SlotStyle carries optional per-slot rendering defaults.
type SlotStyle struct {
	Align    string `json:"align,omitempty" yaml:"align,omitempty" validate:"omitempty,oneof=left center right justify"`
	FontName string `json:"font_name,omitempty" yaml:"font_name,omitempty"`
	Color    string `json:"color,omitempty" yaml:"color,omitempty"`
	Bold     bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
}

// Slot is a fixed placeholder in a layout template.
type Slot struct {
	Type   ElementType `json:"type" yaml:"type" validate:"required,oneof=text image table"`
	X      float64     `json:"x" yaml:"x" validate:"gte=0,lte=1"`
	Y      float64     `json:"y" yaml:"y" validate:"gte=0,lte=1"`
	Width  float64     `json:"width" yaml:"width" validate:"gte=0,lte=1"`
	Height float64     `json:"height" yaml:"height" validate:"gte=0,lte=1"`
	Z      int         `json:"z" yaml:"z"`
	Style  *SlotStyle  `json:"style,omitempty" yaml:"style,omitempty"`
}

// Area returns the fraction of the slide the slot frame covers.
func (s Slot) Area() float64 {
	return s.Width * s.Height
}

// LayoutTemplate is a named, ordered list of slots. Templates are shared read-only.
type LayoutTemplate struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	Elements []Slot `json:"elements" yaml:"elements" validate:"required,min=1,dive"`
}

// CountSlots returns how many slots of type t the template declares.
func (lt *LayoutTemplate) CountSlots(t ElementType) int {
	n := 0
	for _, s := range lt.Elements {
		if s.Type == t {
			n++
		}
	}
	return n
}

// Validate validates the template geometry using the validator.
func (lt *LayoutTemplate) Validate() error {
	validate := validator.New()
	return validate.Struct(lt)
}
