// Package types provides type definitions for structured data used throughout the slide-redesigner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SlideFeatures is the structural feature vector of one slide.
type SlideFeatures struct {
	NumShapes        int     `json:"num_shapes"`
	NumTextBlocks    int     `json:"num_text_blocks"`
	TotalTextLength  int     `json:"total_text_length"`
	AvgTextLen       float64 `json:"avg_text_len"`
	NumImages        int     `json:"num_images"`
	LargestImageArea float64 `json:"largest_image_area"`
	AvgImageArea     float64 `json:"avg_image_area"`
	ImgAspectRatio   float64 `json:"img_aspect_ratio"`
	HasTable         bool    `json:"has_table"`
	HasQuote         bool    `json:"has_quote"`
	HasDigits        bool    `json:"has_digits"`
	IsAgenda         bool    `json:"is_agenda"`
	SlideDensity     float64 `json:"slide_density"`
}

// RedesignedSlide is the fully parameterized description handed to the renderer.
type RedesignedSlide struct {
	SlideNum         int            `json:"slide_num"`
	Layout           string         `json:"layout"`
	ResolutionReason string         `json:"resolution_reason"`
	Features         SlideFeatures  `json:"features"`
	Elements         []BoundElement `json:"elements"`
	Violations       []Violation    `json:"violations,omitempty"`
}

// RedesignedDeck collects the redesigned slides of one presentation.
type RedesignedDeck struct {
	RunID  string            `json:"run_id"`
	Source string            `json:"source,omitempty"`
	Slides []RedesignedSlide `json:"slides"`
}
