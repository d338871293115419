// Package types provides type definitions for structured data used throughout the slide-redesigner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jonathan/slide-redesigner/internal/colors"
)

// SlideMetadata is the per-slide record produced by the extraction step.
type SlideMetadata struct {
	SlideIndex int           `json:"slide_index"`
	SlideNum   int           `json:"slide_num"`
	Shapes     []ShapeRecord `json:"shapes"`
	Notes      *string       `json:"notes,omitempty"`
}

// ShapeRecord describes one extracted shape. Geometry is normalized to slide size.
type ShapeRecord struct {
	ShapeIndex int         `json:"shape_index,omitempty"`
	LeftNorm   float64     `json:"left_norm,omitempty"`
	TopNorm    float64     `json:"top_norm,omitempty"`
	WidthNorm  float64     `json:"width_norm"`
	HeightNorm float64     `json:"height_norm"`
	HasText    bool        `json:"has_text"`
	Text       string      `json:"text,omitempty"`
	Paragraphs []Paragraph `json:"paragraphs,omitempty"`
	HasImage   bool        `json:"has_image"`
	ImagePath  string      `json:"image_path,omitempty"`
	HasTable   bool        `json:"has_table"`
	TableCSV   string      `json:"table_csv,omitempty"`
	Problem    string      `json:"problem,omitempty"`
}

// Paragraph is one paragraph of a text shape.
// Plain marks paragraphs that arrived as a bare string and were wrapped into a single run.
type Paragraph struct {
	Level    int   `json:"level"`
	IsBullet bool  `json:"is_bullet"`
	Runs     []Run `json:"runs"`
	Plain    bool  `json:"-"`
}

// Run is a span of text with uniform formatting.
type Run struct {
	Text       string       `json:"text"`
	Bold       *bool        `json:"bold,omitempty"`
	Italic     *bool        `json:"italic,omitempty"`
	Underline  *bool        `json:"underline,omitempty"`
	FontName   string       `json:"font_name,omitempty"`
	FontSizePt *float64     `json:"font_size_pt,omitempty"`
	Color      colors.Value `json:"color_rgb"`
}

// PlainParagraph wraps bare text into a single-run paragraph.
func PlainParagraph(text string) Paragraph {
	return Paragraph{Runs: []Run{{Text: text}}, Plain: true}
}

// Text concatenates the run texts of the paragraph.
func (p Paragraph) Text() string {
	var buf bytes.Buffer
	for _, r := range p.Runs {
		buf.WriteString(r.Text)
	}
	return buf.String()
}

// UnmarshalJSON accepts the structured {level, is_bullet, runs} form, a bare string,
// or a bare array of runs.
func (p *Paragraph) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = Paragraph{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode plain paragraph: %w", err)
		}
		*p = PlainParagraph(s)
		return nil
	case '[':
		var runs []Run
		if err := json.Unmarshal(data, &runs); err != nil {
			return fmt.Errorf("failed to decode paragraph runs: %w", err)
		}
		*p = Paragraph{Runs: runs}
		return nil
	}

	type structured Paragraph
	var s structured
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to decode paragraph: %w", err)
	}
	*p = Paragraph(s)
	return nil
}
