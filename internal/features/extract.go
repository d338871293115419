// Package features computes the structural feature vector of a slide.
package features

import (
	"encoding/json"
	"errors"
	"io/fs"
	"math"
	"os"
	"strings"
	"unicode"

	"github.com/jonathan/slide-redesigner/internal/types"
)

// agendaKeywords mark a slide as an agenda when found in its first text block.
var agendaKeywords = []string{"agenda", "contents", "overview", "summary", "roadmap"}

// quoteMarks are the characters that flag quoted text.
const quoteMarks = "\"“”"

// Extract computes the feature vector for a slide's shapes.
// Text blocks are shapes that carry non-empty text.
func Extract(shapes []types.ShapeRecord) types.SlideFeatures {
	var texts []string
	var areas, ratios []float64
	hasTable := false

	for _, s := range shapes {
		if s.HasText && s.Text != "" {
			texts = append(texts, s.Text)
		}
		if s.HasImage {
			w, h := s.WidthNorm, s.HeightNorm
			areas = append(areas, w*h)
			if h > 0 {
				ratios = append(ratios, w/h)
			} else {
				ratios = append(ratios, 0)
			}
		}
		if s.HasTable {
			hasTable = true
		}
	}

	combined := strings.Join(texts, " ")
	totalLen := len([]rune(combined))

	f := types.SlideFeatures{
		NumShapes:       len(shapes),
		NumTextBlocks:   len(texts),
		TotalTextLength: totalLen,
		NumImages:       len(areas),
		HasTable:        hasTable,
		HasQuote:        strings.ContainsAny(combined, quoteMarks),
		HasDigits:       containsDigit(combined),
		SlideDensity:    round(float64(len(shapes))/10.0, 3),
	}

	if len(texts) > 0 {
		f.AvgTextLen = round(float64(totalLen)/float64(len(texts)), 2)
		f.IsAgenda = isAgendaTitle(texts[0])
	}

	if len(areas) > 0 {
		largestIdx := 0
		sum := 0.0
		for i, a := range areas {
			sum += a
			if a > areas[largestIdx] {
				largestIdx = i
			}
		}
		f.LargestImageArea = round(areas[largestIdx], 4)
		f.AvgImageArea = round(sum/float64(len(areas)), 4)
		f.ImgAspectRatio = round(ratios[largestIdx], 2)
	}

	return f
}

// ExtractFromFile reads a slide metadata file and computes its features.
// A missing file yields the zero feature vector.
func ExtractFromFile(path string) (types.SlideFeatures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.SlideFeatures{}, nil
		}
		return types.SlideFeatures{}, &MetadataError{Path: path, Message: "failed to read file", Cause: err}
	}

	var slide types.SlideMetadata
	if err := json.Unmarshal(data, &slide); err != nil {
		return types.SlideFeatures{}, &MetadataError{Path: path, Message: "failed to parse JSON", Cause: err}
	}

	return Extract(slide.Shapes), nil
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) || r == '%' || r == '$' {
			return true
		}
	}
	return false
}

func isAgendaTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range agendaKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// round rounds half away from zero to the given number of decimal places.
func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
