package layout

import (
	"testing"

	"github.com/jonathan/slide-redesigner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		f    types.SlideFeatures
		want string
	}{
		{"table", types.SlideFeatures{HasTable: true, IsAgenda: true}, TableCenter},
		{"agenda", types.SlideFeatures{IsAgenda: true, NumImages: 2}, Agenda},
		{"quote", types.SlideFeatures{HasQuote: true, NumImages: 1}, Quote},
		{"quote with many images is a grid", types.SlideFeatures{HasQuote: true, NumImages: 2}, ImageGrid},
		{"big stat", types.SlideFeatures{HasDigits: true, TotalTextLength: 40}, BigStat},
		{"short text", types.SlideFeatures{TotalTextLength: 120, NumTextBlocks: 2}, TitleCenter},
		{"two blocks", types.SlideFeatures{TotalTextLength: 600, NumTextBlocks: 2}, TwoColumn},
		{"three blocks", types.SlideFeatures{TotalTextLength: 600, NumTextBlocks: 3}, ThreeColumn},
		{"four blocks", types.SlideFeatures{TotalTextLength: 600, NumTextBlocks: 4}, FourColumn},
		{"many blocks", types.SlideFeatures{TotalTextLength: 600, NumTextBlocks: 7}, Timeline},
		{"one long block", types.SlideFeatures{TotalTextLength: 900, NumTextBlocks: 1}, TextOnly},
		{"full bleed", types.SlideFeatures{NumImages: 1, LargestImageArea: 0.9, TotalTextLength: 50}, ImageBackground},
		{"wide image", types.SlideFeatures{NumImages: 1, LargestImageArea: 0.3, ImgAspectRatio: 2.0}, ImageTop},
		{"single image", types.SlideFeatures{NumImages: 1, LargestImageArea: 0.3, ImgAspectRatio: 1.0}, ImageRight},
		{"two images", types.SlideFeatures{NumImages: 2}, ImageGrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.f))
		})
	}
}

func TestRulePredictor_FeedsResolver(t *testing.T) {
	p := NewRulePredictor()
	r := NewResolver(DefaultResolverRules())

	f := types.SlideFeatures{TotalTextLength: 600, NumTextBlocks: 3}
	got := p.Predict(f)
	require.Len(t, got, 2)
	assert.Equal(t, ThreeColumn, got[0].Layout)
	assert.Equal(t, 1.0, got[0].Confidence)
	assert.Equal(t, TextOnly, got[1].Layout)

	res, err := r.Resolve(got, f)
	require.NoError(t, err)
	assert.Equal(t, ThreeColumn, res.Layout)
	assert.Equal(t, RuleModel, res.Rule)
}

func TestRulePredictor_DistinctAlternative(t *testing.T) {
	p := NewRulePredictor()

	got := p.Predict(types.SlideFeatures{TotalTextLength: 900, NumTextBlocks: 1})
	assert.Equal(t, TextOnly, got[0].Layout)
	assert.Equal(t, TitleCenter, got[1].Layout)

	got = p.Predict(types.SlideFeatures{NumImages: 1, LargestImageArea: 0.2, ImgAspectRatio: 1})
	assert.Equal(t, ImageRight, got[0].Layout)
	assert.Equal(t, ImageLeft, got[1].Layout)
}
