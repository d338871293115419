package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/slide-redesigner/internal/layout"
	"github.com/jonathan/slide-redesigner/internal/observability"
	"github.com/jonathan/slide-redesigner/internal/pipeline"
	"github.com/jonathan/slide-redesigner/internal/schemas"
	"github.com/jonathan/slide-redesigner/internal/types"
	rootschemas "github.com/jonathan/slide-redesigner/schemas"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the final layout from predictions and features",
	Long:  "Applies content overrides and the confidence gate to ranked layout predictions. Without --predictions the rule-based predictor is used.",
	RunE:  runResolve,
}

var (
	resolveFeatures    string
	resolvePredictions string
	resolveSlideNum    int
	resolveJSON        bool
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveFeatures, "features", "f", "", "Path to SlideFeatures JSON (required)")
	resolveCmd.Flags().StringVarP(&resolvePredictions, "predictions", "p", "", "Path to predictions JSON (ranked list or deck document)")
	resolveCmd.Flags().IntVar(&resolveSlideNum, "slide-num", 1, "Slide number to look up in a deck predictions document")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Print the resolution as JSON")

	if err := resolveCmd.MarkFlagRequired("features"); err != nil {
		panic(fmt.Sprintf("failed to mark features flag as required: %v", err))
	}

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(resolveFeatures)
	if err != nil {
		return fmt.Errorf("failed to read features file: %w", err)
	}
	if err := schemas.ValidateDocument(rootschemas.SlideFeatures, content); err != nil {
		return fmt.Errorf("invalid features file: %w", err)
	}
	var f types.SlideFeatures
	if err := json.Unmarshal(content, &f); err != nil {
		return fmt.Errorf("failed to unmarshal features JSON: %w", err)
	}

	var preds []types.Prediction
	if resolvePredictions != "" {
		set, err := pipeline.LoadPredictions(resolvePredictions, resolveSlideNum)
		if err != nil {
			return err
		}
		preds = set.ForSlide(resolveSlideNum)
		if preds == nil {
			return fmt.Errorf("no predictions for slide %d in %s", resolveSlideNum, resolvePredictions)
		}
	} else {
		preds = layout.NewRulePredictor().Predict(f)
	}

	res, err := layout.NewResolver(appConfig.Resolver).Resolve(preds, f)
	if err != nil {
		return fmt.Errorf("failed to resolve layout: %w", err)
	}

	if appConfig.Verbose {
		observability.NewPrinter(os.Stderr).PrintResolution(resolveSlideNum, preds, res.Layout, res.Rule)
	}
	appLogger.Info("layout resolved", map[string]interface{}{"layout": res.Layout, "rule": res.Rule})

	if resolveJSON {
		return writeJSON("", res)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Layout: %s\n", res.Layout)
	_, _ = fmt.Fprintf(os.Stdout, "Rule: %s\n", res.Rule)
	return nil
}
