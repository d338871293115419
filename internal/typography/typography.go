package typography

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/slide-redesigner/internal/types"
)

// Threshold maps densities up to and including MaxDensity to FontSize.
type Threshold struct {
	MaxDensity float64 `json:"max_density" mapstructure:"max_density" validate:"gt=0"`
	FontSize   float64 `json:"font_size" mapstructure:"font_size" validate:"gt=0"`
}

// SpacingTier applies LineSpacing to font sizes of at least MinFontSize.
type SpacingTier struct {
	MinFontSize float64 `json:"min_font_size" mapstructure:"min_font_size" validate:"gt=0"`
	LineSpacing float64 `json:"line_spacing" mapstructure:"line_spacing" validate:"gt=0"`
}

// Rules holds the density thresholds and spacing tiers. Thresholds are
// ordered by increasing density; spacing tiers by decreasing font size.
type Rules struct {
	Thresholds     []Threshold   `json:"thresholds" mapstructure:"thresholds" validate:"required,min=1,dive"`
	MinFontSize    float64       `json:"min_font_size" mapstructure:"min_font_size" validate:"gt=0"`
	Spacing        []SpacingTier `json:"spacing" mapstructure:"spacing" validate:"dive"`
	DefaultSpacing float64       `json:"default_spacing" mapstructure:"default_spacing" validate:"gt=0"`
	MinArea        float64       `json:"min_area" mapstructure:"min_area" validate:"gt=0,lte=1"`
}

// DefaultRules returns the production rule set: 28pt for sparse slots down to 10pt for crowded ones.
func DefaultRules() Rules {
	return Rules{
		Thresholds: []Threshold{
			{MaxDensity: 400, FontSize: 28},
			{MaxDensity: 1000, FontSize: 24},
			{MaxDensity: 2000, FontSize: 18},
			{MaxDensity: 3500, FontSize: 14},
		},
		MinFontSize: 10,
		Spacing: []SpacingTier{
			{MinFontSize: 24, LineSpacing: 1.2},
			{MinFontSize: 18, LineSpacing: 1.15},
		},
		DefaultSpacing: 1.1,
		MinArea:        0.01,
	}
}

// Validate checks field ranges and that font size never grows with density.
func (r Rules) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	prev := Threshold{}
	for i, t := range r.Thresholds {
		if i > 0 && t.MaxDensity <= prev.MaxDensity {
			return &RulesError{Message: fmt.Sprintf("threshold %d density %.0f is not above %.0f", i, t.MaxDensity, prev.MaxDensity)}
		}
		if i > 0 && t.FontSize > prev.FontSize {
			return &RulesError{Message: fmt.Sprintf("threshold %d font size %.1f grows with density", i, t.FontSize)}
		}
		prev = t
	}
	if r.MinFontSize > prev.FontSize {
		return &RulesError{Message: fmt.Sprintf("min font size %.1f exceeds last threshold font size %.1f", r.MinFontSize, prev.FontSize)}
	}
	for i := 1; i < len(r.Spacing); i++ {
		if r.Spacing[i].MinFontSize >= r.Spacing[i-1].MinFontSize {
			return &RulesError{Message: "spacing tiers must be ordered by decreasing font size"}
		}
	}
	return nil
}

// Engine applies a rule set to bound elements. It holds no mutable state.
type Engine struct {
	rules Rules
}

// NewEngine creates an Engine with the given rules.
func NewEngine(rules Rules) *Engine {
	return &Engine{rules: rules}
}

// Density is characters per unit of slide area, with the area floored at MinArea.
func (e *Engine) Density(el *types.BoundElement) float64 {
	area := el.Area()
	if area < e.rules.MinArea {
		area = e.rules.MinArea
	}
	return float64(el.CharCount()) / area
}

// FontSize maps a density to a point size.
func (e *Engine) FontSize(density float64) float64 {
	for _, t := range e.rules.Thresholds {
		if density <= t.MaxDensity {
			return t.FontSize
		}
	}
	return e.rules.MinFontSize
}

// LineSpacing maps a point size to a line-spacing multiplier.
func (e *Engine) LineSpacing(fontSize float64) float64 {
	for _, tier := range e.rules.Spacing {
		if fontSize >= tier.MinFontSize {
			return tier.LineSpacing
		}
	}
	return e.rules.DefaultSpacing
}

// AtMinimum reports whether el's density is past every threshold.
func (e *Engine) AtMinimum(el *types.BoundElement) bool {
	last := e.rules.Thresholds[len(e.rules.Thresholds)-1]
	return e.Density(el) > last.MaxDensity
}

// Apply sets FontSize and LineSpacing on every text element in place.
// Image and table elements are left untouched.
func (e *Engine) Apply(elements []types.BoundElement) []types.BoundElement {
	for i := range elements {
		el := &elements[i]
		if el.Type != types.ElementText {
			continue
		}
		el.FontSize = e.FontSize(e.Density(el))
		el.LineSpacing = e.LineSpacing(el.FontSize)
	}
	return elements
}

// ApplyTypography applies the default rules.
func ApplyTypography(elements []types.BoundElement) []types.BoundElement {
	return NewEngine(DefaultRules()).Apply(elements)
}
