package layout

import (
	"testing"

	"github.com/jonathan/slide-redesigner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preds(l1 string, c1 float64, l2 string, c2 float64) []types.Prediction {
	return []types.Prediction{{Layout: l1, Confidence: c1}, {Layout: l2, Confidence: c2}}
}

func TestResolve_Rules(t *testing.T) {
	tests := []struct {
		name       string
		preds      []types.Prediction
		features   types.SlideFeatures
		wantLayout string
		wantRule   string
	}{
		{
			name:       "table overrides everything",
			preds:      preds(ImageGrid, 0.9, TextOnly, 0.05),
			features:   types.SlideFeatures{HasTable: true, NumImages: 5},
			wantLayout: TableCenter,
			wantRule:   RuleTableOverride,
		},
		{
			name:       "three images force grid",
			preds:      preds(TwoColumn, 0.95, TextOnly, 0.01),
			features:   types.SlideFeatures{NumImages: 3},
			wantLayout: ImageGrid,
			wantRule:   RuleImageGrid,
		},
		{
			name:       "text only with images",
			preds:      preds(TextOnly, 0.99, TitleCenter, 0.01),
			features:   types.SlideFeatures{NumImages: 1},
			wantLayout: ImageRight,
			wantRule:   RuleTextWithImages,
		},
		{
			name:       "low confidence without images",
			preds:      preds(Quote, 0.5, TwoColumn, 0.1),
			features:   types.SlideFeatures{NumTextBlocks: 2},
			wantLayout: TextOnly,
			wantRule:   RuleLowConfidence,
		},
		{
			name:       "ambiguous with images",
			preds:      preds(ImageLeft, 0.6, ImageTop, 0.55),
			features:   types.SlideFeatures{NumImages: 1},
			wantLayout: ImageRight,
			wantRule:   RuleAmbiguous,
		},
		{
			name:       "confident model wins",
			preds:      preds(TwoColumn, 0.8, ThreeColumn, 0.1),
			features:   types.SlideFeatures{NumTextBlocks: 2},
			wantLayout: TwoColumn,
			wantRule:   RuleModel,
		},
		{
			name:       "exact threshold is confident",
			preds:      preds(Agenda, 0.55, TextOnly, 0.40),
			features:   types.SlideFeatures{},
			wantLayout: Agenda,
			wantRule:   RuleModel,
		},
	}

	r := NewResolver(DefaultResolverRules())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Resolve(tt.preds, tt.features)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLayout, res.Layout)
			assert.Equal(t, tt.wantRule, res.Rule)
		})
	}
}

func TestResolve_InsufficientPredictions(t *testing.T) {
	r := NewResolver(DefaultResolverRules())

	_, err := r.Resolve(nil, types.SlideFeatures{})
	assert.ErrorIs(t, err, ErrInsufficientPredictions)

	_, err = r.Resolve([]types.Prediction{{Layout: TextOnly, Confidence: 1}}, types.SlideFeatures{})
	assert.ErrorIs(t, err, ErrInsufficientPredictions)
}

func TestResolve_ConfidenceGateProperty(t *testing.T) {
	r := NewResolver(DefaultResolverRules())
	confidences := []float64{0, 0.1, 0.3, 0.5, 0.54, 0.55, 0.6, 0.62, 0.7, 0.9, 1.0}

	for _, c1 := range confidences {
		for _, c2 := range confidences {
			if c2 > c1 {
				continue
			}
			gated := c1 < 0.55 || (c1-c2) < 0.08
			if !gated {
				continue
			}
			for _, images := range []int{0, 1, 2} {
				res, err := r.Resolve(preds(TwoColumn, c1, Quote, c2), types.SlideFeatures{NumImages: images})
				require.NoError(t, err)
				want := TextOnly
				if images > 0 {
					want = ImageRight
				}
				assert.Equal(t, want, res.Layout, "c1=%v c2=%v images=%d", c1, c2, images)
			}
		}
	}
}

func TestResolve_TableAlwaysWins(t *testing.T) {
	r := NewResolver(DefaultResolverRules())
	for _, images := range []int{0, 1, 3, 10} {
		for _, top := range Archetypes {
			res, err := r.Resolve(preds(top, 0.99, TextOnly, 0.01), types.SlideFeatures{HasTable: true, NumImages: images})
			require.NoError(t, err)
			assert.Equal(t, TableCenter, res.Layout)
		}
	}
}

func TestResolveLayout(t *testing.T) {
	layout, err := ResolveLayout(
		[]types.Prediction{{Layout: ImageGrid, Confidence: 0.9}, {Layout: TextOnly, Confidence: 0.1}},
		types.SlideFeatures{HasTable: true, NumImages: 5},
	)
	require.NoError(t, err)
	assert.Equal(t, "table_center", layout)

	_, err = ResolveLayout(nil, types.SlideFeatures{})
	assert.Error(t, err)
}

func TestResolve_CustomRules(t *testing.T) {
	rules := DefaultResolverRules()
	rules.MinConfidence = 0.9
	rules.TextFallback = TitleCenter

	res, err := NewResolver(rules).Resolve(preds(TwoColumn, 0.8, Quote, 0.1), types.SlideFeatures{})
	require.NoError(t, err)
	assert.Equal(t, TitleCenter, res.Layout)
	assert.Equal(t, RuleLowConfidence, res.Rule)
}
