package main

import (
	"fmt"
	"os"

	"github.com/jonathan/slide-redesigner/internal/features"
	"github.com/jonathan/slide-redesigner/internal/observability"
	rootschemas "github.com/jonathan/slide-redesigner/schemas"
	"github.com/spf13/cobra"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Compute the structural feature vector of a slide",
	Long:  "Reads a slide metadata JSON file and writes its SlideFeatures. A missing metadata file yields the all-zero vector.",
	RunE:  runFeatures,
}

var (
	featuresSlide    string
	featuresSlideNum int
	featuresOutput   string
	featuresModel    bool
	featuresColumns  []string
)

// modelInput is the ordered row handed to the layout classifier.
type modelInput struct {
	Columns []string  `json:"columns"`
	Row     []float64 `json:"row"`
}

func init() {
	featuresCmd.Flags().StringVarP(&featuresSlide, "slide", "s", "", "Path to slide metadata JSON (required)")
	featuresCmd.Flags().IntVar(&featuresSlideNum, "slide-num", 0, "Slide number shown in verbose output")
	featuresCmd.Flags().StringVarP(&featuresOutput, "out", "o", "", "Path to output features JSON (default stdout)")
	featuresCmd.Flags().BoolVar(&featuresModel, "model-input", false, "Write the ordered classifier input row instead of the feature vector")
	featuresCmd.Flags().StringSliceVar(&featuresColumns, "columns", nil, "Classifier columns for --model-input (default: the trained column set)")

	if err := featuresCmd.MarkFlagRequired("slide"); err != nil {
		panic(fmt.Sprintf("failed to mark slide flag as required: %v", err))
	}

	rootCmd.AddCommand(featuresCmd)
}

func runFeatures(_ *cobra.Command, _ []string) error {
	f, err := features.ExtractFromFile(featuresSlide)
	if err != nil {
		return fmt.Errorf("failed to extract features: %w", err)
	}

	if appConfig.Verbose {
		observability.NewPrinter(os.Stderr).PrintFeatures(featuresSlideNum, &f)
	}

	if featuresModel {
		columns := featuresColumns
		if len(columns) == 0 {
			columns = features.FeatureColumns
		}
		row, err := features.BuildModelInput(features.ToMap(f), columns)
		if err != nil {
			return fmt.Errorf("failed to build model input: %w", err)
		}
		return writeJSON(featuresOutput, modelInput{Columns: columns, Row: row})
	}

	checkOutput(rootschemas.SlideFeatures, f)
	if err := writeJSON(featuresOutput, f); err != nil {
		return err
	}
	appLogger.Debug("features extracted", map[string]interface{}{"slide": featuresSlide})
	return nil
}
