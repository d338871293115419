// Package layout resolves a slide's layout archetype and owns the layout template catalog.
package layout

import (
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/slide-redesigner/internal/types"
)

// Rule names recorded as the reason for a resolution.
const (
	RuleTableOverride  = "table_override"
	RuleImageGrid      = "image_grid_override"
	RuleTextWithImages = "text_only_with_images"
	RuleLowConfidence  = "low_confidence"
	RuleAmbiguous      = "ambiguous"
	RuleModel          = "model"
)

// ResolverRules holds the override targets and confidence gate of the resolver.
type ResolverRules struct {
	MinConfidence float64 `json:"min_confidence" mapstructure:"min_confidence" validate:"gte=0,lte=1"`
	MinMargin     float64 `json:"min_margin" mapstructure:"min_margin" validate:"gte=0,lte=1"`
	GridMinImages int     `json:"grid_min_images" mapstructure:"grid_min_images" validate:"gte=1"`
	TableLayout   string  `json:"table_layout" mapstructure:"table_layout" validate:"required"`
	GridLayout    string  `json:"grid_layout" mapstructure:"grid_layout" validate:"required"`
	ImageFallback string  `json:"image_fallback" mapstructure:"image_fallback" validate:"required"`
	TextFallback  string  `json:"text_fallback" mapstructure:"text_fallback" validate:"required"`
}

// DefaultResolverRules returns the production thresholds.
func DefaultResolverRules() ResolverRules {
	return ResolverRules{
		MinConfidence: 0.55,
		MinMargin:     0.08,
		GridMinImages: 3,
		TableLayout:   TableCenter,
		GridLayout:    ImageGrid,
		ImageFallback: ImageRight,
		TextFallback:  TextOnly,
	}
}

// Validate checks the rule ranges and that every fallback layout is named.
func (r ResolverRules) Validate() error {
	return validator.New().Struct(r)
}

// Resolution is the final layout and the rule that chose it.
type Resolution struct {
	Layout string `json:"layout"`
	Rule   string `json:"rule"`
}

// Resolver turns ranked predictions plus features into one layout name.
type Resolver struct {
	rules ResolverRules
}

// NewResolver creates a Resolver with the given rules.
func NewResolver(rules ResolverRules) *Resolver {
	return &Resolver{rules: rules}
}

// Resolve applies, in order: content overrides, the text-only sanity check,
// the confidence gate, and finally the model's top prediction.
func (r *Resolver) Resolve(predictions []types.Prediction, f types.SlideFeatures) (Resolution, error) {
	if len(predictions) < 2 {
		return Resolution{}, ErrInsufficientPredictions
	}
	best, second := predictions[0], predictions[1]

	if f.HasTable {
		return Resolution{Layout: r.rules.TableLayout, Rule: RuleTableOverride}, nil
	}
	if f.NumImages >= r.rules.GridMinImages {
		return Resolution{Layout: r.rules.GridLayout, Rule: RuleImageGrid}, nil
	}
	if best.Layout == TextOnly && f.NumImages > 0 {
		return Resolution{Layout: r.rules.ImageFallback, Rule: RuleTextWithImages}, nil
	}

	lowConfidence := best.Confidence < r.rules.MinConfidence
	ambiguous := math.Abs(best.Confidence-second.Confidence) < r.rules.MinMargin
	if lowConfidence || ambiguous {
		rule := RuleAmbiguous
		if lowConfidence {
			rule = RuleLowConfidence
		}
		return Resolution{Layout: r.safeDefault(f), Rule: rule}, nil
	}

	return Resolution{Layout: best.Layout, Rule: RuleModel}, nil
}

func (r *Resolver) safeDefault(f types.SlideFeatures) string {
	if f.NumImages > 0 {
		return r.rules.ImageFallback
	}
	return r.rules.TextFallback
}

// ResolveLayout resolves with the default rules and returns only the layout name.
func ResolveLayout(predictions []types.Prediction, f types.SlideFeatures) (string, error) {
	res, err := NewResolver(DefaultResolverRules()).Resolve(predictions, f)
	if err != nil {
		return "", err
	}
	return res.Layout, nil
}
