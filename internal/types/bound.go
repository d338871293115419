// Package types provides type definitions for structured data used throughout the slide-redesigner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FitMode controls how an image fills its frame.
type FitMode string

const (
	// FitCover crops to fill the frame, preserving aspect ratio.
	FitCover FitMode = "cover"
	// FitContain keeps the whole image visible, preserving aspect ratio.
	FitContain FitMode = "contain"
)

// Overlay is a translucent fill drawn over an image.
type Overlay struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

// BoundElement is a slot with its resolved content and derived rendering parameters.
type BoundElement struct {
	Type   ElementType `json:"type"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Z      int         `json:"z"`
	Style  *SlotStyle  `json:"style,omitempty"`

	// text
	Content     []Paragraph `json:"content,omitempty"`
	FontSize    float64     `json:"font_size,omitempty"`
	LineSpacing float64     `json:"line_spacing,omitempty"`

	// image and table
	Source  string   `json:"source,omitempty"`
	Fit     FitMode  `json:"fit,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Overlay *Overlay `json:"overlay,omitempty"`
}

// NewBoundElement copies a slot's geometry and style into a fresh element.
func NewBoundElement(slot Slot) BoundElement {
	el := BoundElement{
		Type:   slot.Type,
		X:      slot.X,
		Y:      slot.Y,
		Width:  slot.Width,
		Height: slot.Height,
		Z:      slot.Z,
	}
	if slot.Style != nil {
		style := *slot.Style
		el.Style = &style
	}
	return el
}

// Area returns the fraction of the slide the element frame covers.
func (e *BoundElement) Area() float64 {
	return e.Width * e.Height
}

// CharCount counts run-level characters across the bound content.
func (e *BoundElement) CharCount() int {
	n := 0
	for _, p := range e.Content {
		for _, r := range p.Runs {
			n += len([]rune(r.Text))
		}
	}
	return n
}
