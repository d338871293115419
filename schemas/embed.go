// Package schemas embeds the JSON Schemas for every artifact the pipeline reads or writes.
package schemas

import "embed"

// FS holds the *.schema.json documents.
//
//go:embed *.schema.json
var FS embed.FS

// Schema names, without the ".schema.json" suffix.
const (
	SlideMetadata  = "slide_metadata"
	PredictionList = "prediction_list"
	PredictionSet  = "prediction_set"
	LayoutTemplate = "layout_template"
	RedesignedDeck = "redesigned_deck"
	SlideFeatures  = "slide_features"
)

// Names lists every embedded schema.
var Names = []string{SlideMetadata, PredictionList, PredictionSet, LayoutTemplate, RedesignedDeck, SlideFeatures}
