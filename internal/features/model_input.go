// Package features computes the structural feature vector of a slide.
package features

import (
	"github.com/jonathan/slide-redesigner/internal/types"
)

// FeatureColumns is the ordered column list the layout classifier was trained on.
var FeatureColumns = []string{
	"num_text_blocks",
	"total_text_length",
	"avg_text_len",
	"num_images",
	"largest_image_area",
	"avg_image_area",
	"img_aspect_ratio",
	"has_table",
	"has_quote",
	"has_digits",
	"is_agenda",
	"slide_density",
}

// ToMap flattens the features into named numeric fields. Flags become 0 or 1.
func ToMap(f types.SlideFeatures) map[string]float64 {
	return map[string]float64{
		"num_shapes":         float64(f.NumShapes),
		"num_text_blocks":    float64(f.NumTextBlocks),
		"total_text_length":  float64(f.TotalTextLength),
		"avg_text_len":       f.AvgTextLen,
		"num_images":         float64(f.NumImages),
		"largest_image_area": f.LargestImageArea,
		"avg_image_area":     f.AvgImageArea,
		"img_aspect_ratio":   f.ImgAspectRatio,
		"has_table":          flag(f.HasTable),
		"has_quote":          flag(f.HasQuote),
		"has_digits":         flag(f.HasDigits),
		"is_agenda":          flag(f.IsAgenda),
		"slide_density":      f.SlideDensity,
	}
}

// BuildModelInput orders a feature map by columns. Every column must be present.
func BuildModelInput(values map[string]float64, columns []string) ([]float64, error) {
	row := make([]float64, 0, len(columns))
	for _, col := range columns {
		v, ok := values[col]
		if !ok {
			return nil, &MissingFeatureError{Feature: col}
		}
		row = append(row, v)
	}
	return row, nil
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
