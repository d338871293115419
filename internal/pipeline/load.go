package pipeline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/jonathan/slide-redesigner/internal/schemas"
	"github.com/jonathan/slide-redesigner/internal/types"
	rootschemas "github.com/jonathan/slide-redesigner/schemas"
)

// LoadSlide reads and schema-validates one slide metadata file.
func LoadSlide(path string) (*types.SlideMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	if err := schemas.ValidateDocument(rootschemas.SlideMetadata, data); err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
	}

	var slide types.SlideMetadata
	if err := json.Unmarshal(data, &slide); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse JSON", Cause: err}
	}
	return &slide, nil
}

// LoadSlidesDir loads every *.json file in dir, ordered by slide number and
// then file name.
func LoadSlidesDir(dir string) ([]*types.SlideMetadata, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, &LoadError{Path: dir, Message: "invalid directory pattern", Cause: err}
	}
	sort.Strings(paths)

	slides := make([]*types.SlideMetadata, 0, len(paths))
	for _, path := range paths {
		slide, err := LoadSlide(path)
		if err != nil {
			return nil, err
		}
		slides = append(slides, slide)
	}
	sort.SliceStable(slides, func(i, j int) bool {
		return slides[i].SlideNum < slides[j].SlideNum
	})
	return slides, nil
}

// LoadPredictions reads classifier output. Both a deck-level
// {"slides": [...]} document and a bare ranked list are accepted; a bare list
// is keyed to slideNum.
func LoadPredictions(path string, slideNum int) (*types.PredictionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := schemas.ValidateDocument(rootschemas.PredictionList, data); err != nil {
			return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
		}
		var preds []types.Prediction
		if err := json.Unmarshal(data, &preds); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to parse JSON", Cause: err}
		}
		return &types.PredictionSet{Slides: []types.SlidePredictions{{SlideNum: slideNum, Predictions: preds}}}, nil
	}

	if err := schemas.ValidateDocument(rootschemas.PredictionSet, data); err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
	}
	var set types.PredictionSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse JSON", Cause: err}
	}
	return &set, nil
}

// Inputs pairs each slide with its predictions, if any.
func Inputs(slides []*types.SlideMetadata, preds *types.PredictionSet) []SlideInput {
	inputs := make([]SlideInput, 0, len(slides))
	for _, s := range slides {
		inputs = append(inputs, SlideInput{Metadata: s, Predictions: preds.ForSlide(s.SlideNum)})
	}
	return inputs
}
