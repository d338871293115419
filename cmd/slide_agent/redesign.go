package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/slide-redesigner/internal/observability"
	"github.com/jonathan/slide-redesigner/internal/pipeline"
	"github.com/jonathan/slide-redesigner/internal/types"
	rootschemas "github.com/jonathan/slide-redesigner/schemas"
	"github.com/spf13/cobra"
)

var redesignCmd = &cobra.Command{
	Use:   "redesign",
	Short: "Redesign a whole deck",
	Long:  "Runs feature extraction, layout resolution, content binding, typography and image rules for every slide, processing slides concurrently.",
	RunE:  runRedesign,
}

var (
	redesignSlidesDir   string
	redesignSlide       string
	redesignPredictions string
	redesignAssetsDir   string
	redesignWorkers     int
	redesignMetricsFile string
	redesignOutput      string
)

func init() {
	redesignCmd.Flags().StringVarP(&redesignSlidesDir, "slides-dir", "d", "", "Directory of slide metadata JSON files")
	redesignCmd.Flags().StringVarP(&redesignSlide, "slide", "s", "", "Single slide metadata JSON file")
	redesignCmd.Flags().StringVarP(&redesignPredictions, "predictions", "p", "", "Path to predictions JSON (optional; rule-based predictor otherwise)")
	redesignCmd.Flags().StringVar(&redesignAssetsDir, "assets-dir", "", "Deck asset root holding images_final/")
	redesignCmd.Flags().IntVarP(&redesignWorkers, "workers", "w", 0, "Slides processed concurrently (default from config)")
	redesignCmd.Flags().StringVar(&redesignMetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	redesignCmd.Flags().StringVarP(&redesignOutput, "out", "o", "", "Path to output RedesignedDeck JSON (default stdout)")

	redesignCmd.MarkFlagsMutuallyExclusive("slides-dir", "slide")
	redesignCmd.MarkFlagsOneRequired("slides-dir", "slide")

	rootCmd.AddCommand(redesignCmd)
}

func runRedesign(cmd *cobra.Command, _ []string) error {
	cfg := *appConfig
	if redesignAssetsDir != "" {
		cfg.AssetsDir = redesignAssetsDir
	}
	if redesignWorkers > 0 {
		cfg.Workers = redesignWorkers
	}
	if redesignMetricsFile != "" {
		cfg.MetricsFile = redesignMetricsFile
	}

	var slides []*types.SlideMetadata
	source := redesignSlidesDir
	if redesignSlide != "" {
		slide, err := pipeline.LoadSlide(redesignSlide)
		if err != nil {
			return err
		}
		slides = []*types.SlideMetadata{slide}
		source = redesignSlide
	} else {
		var err error
		if slides, err = pipeline.LoadSlidesDir(redesignSlidesDir); err != nil {
			return err
		}
		if len(slides) == 0 {
			return fmt.Errorf("no slide metadata files found in %s", redesignSlidesDir)
		}
	}

	var preds *types.PredictionSet
	if redesignPredictions != "" {
		var err error
		if preds, err = pipeline.LoadPredictions(redesignPredictions, slides[0].SlideNum); err != nil {
			return err
		}
	}

	var metrics *observability.Metrics
	if cfg.MetricsFile != "" {
		metrics = observability.NewMetrics()
	}
	engine, err := pipeline.NewEngineFromConfig(&cfg, appLogger, metrics)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stderr)
	opts := pipeline.DeckOptions{
		Source:  filepath.Base(source),
		Workers: cfg.Workers,
	}
	if cfg.Verbose {
		opts.OnProgress = func(ev pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stderr, "[%s] %s\n", ev.Category, ev.Message)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	deck, err := engine.RedesignDeck(ctx, pipeline.Inputs(slides, preds), opts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		for i := range deck.Slides {
			printer.PrintSlide(&deck.Slides[i])
		}
		printer.PrintDeckSummary(deck)
	}

	checkOutput(rootschemas.RedesignedDeck, deck)
	if err := writeJSON(redesignOutput, deck); err != nil {
		return err
	}
	if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	if redesignOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Redesigned %d slide(s)\n", len(deck.Slides))
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", redesignOutput)
	}
	return nil
}
