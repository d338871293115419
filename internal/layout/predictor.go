package layout

import "github.com/jonathan/slide-redesigner/internal/types"

// Predictor produces a ranked layout prediction list for a feature vector.
type Predictor interface {
	Predict(f types.SlideFeatures) []types.Prediction
}

// RulePredictor labels slides with deterministic content heuristics. It stands
// in for the external classifier when no predictions are supplied.
type RulePredictor struct{}

// NewRulePredictor creates a RulePredictor.
func NewRulePredictor() *RulePredictor {
	return &RulePredictor{}
}

// Predict returns the heuristic label at confidence 1.0 followed by a
// content-safe alternative at 0.0.
func (p *RulePredictor) Predict(f types.SlideFeatures) []types.Prediction {
	label := Label(f)
	alt := TextOnly
	if f.NumImages > 0 {
		alt = ImageRight
	}
	if alt == label {
		alt = TitleCenter
		if f.NumImages > 0 {
			alt = ImageLeft
		}
	}
	return []types.Prediction{
		{Layout: label, Confidence: 1.0},
		{Layout: alt, Confidence: 0.0},
	}
}

// Label returns the heuristic layout label for a feature vector.
func Label(f types.SlideFeatures) string {
	switch {
	case f.HasTable:
		return TableCenter
	case f.IsAgenda:
		return Agenda
	case f.NumImages <= 1 && f.HasQuote:
		return Quote
	}

	if f.NumImages == 0 {
		switch {
		case f.HasDigits && f.TotalTextLength < 100:
			return BigStat
		case f.TotalTextLength < 300:
			return TitleCenter
		case f.NumTextBlocks == 2:
			return TwoColumn
		case f.NumTextBlocks == 3:
			return ThreeColumn
		case f.NumTextBlocks == 4:
			return FourColumn
		case f.NumTextBlocks >= 5:
			return Timeline
		}
		return TextOnly
	}

	if f.NumImages == 1 {
		switch {
		case f.LargestImageArea > 0.8 && f.TotalTextLength < 200:
			return ImageBackground
		case f.ImgAspectRatio > 1.5:
			return ImageTop
		}
		return ImageRight
	}

	return ImageGrid
}
