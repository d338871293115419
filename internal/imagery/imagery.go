// Package imagery derives fit mode, scale and overlay for bound image slots.
package imagery

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/slide-redesigner/internal/types"
)

// ScaleTier applies Scale to images whose dominance is strictly above MinDominance.
type ScaleTier struct {
	MinDominance float64 `json:"min_dominance" mapstructure:"min_dominance" validate:"gte=0,lte=1"`
	Scale        float64 `json:"scale" mapstructure:"scale" validate:"gt=0,lte=1"`
}

// Rules holds the image rule set. ScaleTiers are ordered by decreasing dominance.
type Rules struct {
	ScaleTiers       []ScaleTier   `json:"scale_tiers" mapstructure:"scale_tiers" validate:"dive"`
	DefaultScale     float64       `json:"default_scale" mapstructure:"default_scale" validate:"gt=0,lte=1"`
	CoverLayouts     []string      `json:"cover_layouts" mapstructure:"cover_layouts"`
	BackgroundLayout string        `json:"background_layout" mapstructure:"background_layout"`
	Overlay          types.Overlay `json:"overlay" mapstructure:"overlay"`
}

// DefaultRules returns the production rule set.
func DefaultRules() Rules {
	return Rules{
		ScaleTiers: []ScaleTier{
			{MinDominance: 0.6, Scale: 0.90},
			{MinDominance: 0.3, Scale: 0.95},
		},
		DefaultScale: 1.0,
		CoverLayouts: []string{
			"image_background", "image_grid", "image_left",
			"image_right", "image_top", "image_bottom",
		},
		BackgroundLayout: "image_background",
		Overlay:          types.Overlay{Color: "black", Opacity: 0.40},
	}
}

// Validate checks ranges and tier ordering.
func (r Rules) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	for i := 1; i < len(r.ScaleTiers); i++ {
		if r.ScaleTiers[i].MinDominance >= r.ScaleTiers[i-1].MinDominance {
			return fmt.Errorf("invalid image rules: scale tiers must be ordered by decreasing dominance")
		}
	}
	if r.Overlay.Opacity < 0 || r.Overlay.Opacity > 1 {
		return fmt.Errorf("invalid image rules: overlay opacity %.2f outside [0,1]", r.Overlay.Opacity)
	}
	return nil
}

// Engine applies image rules. It holds no mutable state.
type Engine struct {
	rules Rules
	cover map[string]bool
}

// NewEngine creates an Engine with the given rules.
func NewEngine(rules Rules) *Engine {
	cover := make(map[string]bool, len(rules.CoverLayouts))
	for _, name := range rules.CoverLayouts {
		cover[name] = true
	}
	return &Engine{rules: rules, cover: cover}
}

// Dominance is the fraction of the slide the image frame occupies.
func Dominance(el *types.BoundElement) float64 {
	return el.Area()
}

// Scale returns the scale factor for an image of the given dominance on layout.
func (e *Engine) Scale(dominance float64, layout string) float64 {
	if layout == e.rules.BackgroundLayout {
		return 1.0
	}
	for _, tier := range e.rules.ScaleTiers {
		if dominance > tier.MinDominance {
			return tier.Scale
		}
	}
	return e.rules.DefaultScale
}

// Fit returns cover for photo-led layouts and contain for everything else.
func (e *Engine) Fit(layout string) types.FitMode {
	if e.cover[layout] {
		return types.FitCover
	}
	return types.FitContain
}

// Apply sets Scale, Fit and Overlay on every image element in place.
func (e *Engine) Apply(elements []types.BoundElement, layout string) []types.BoundElement {
	for i := range elements {
		el := &elements[i]
		if el.Type != types.ElementImage {
			continue
		}
		el.Scale = e.Scale(Dominance(el), layout)
		el.Fit = e.Fit(layout)
		el.Overlay = nil
		if layout == e.rules.BackgroundLayout {
			overlay := e.rules.Overlay
			el.Overlay = &overlay
		}
	}
	return elements
}

// ApplyImageRules applies the default rules.
func ApplyImageRules(elements []types.BoundElement, layout string) []types.BoundElement {
	return NewEngine(DefaultRules()).Apply(elements, layout)
}
