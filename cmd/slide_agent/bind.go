package main

import (
	"fmt"
	"os"

	"github.com/jonathan/slide-redesigner/internal/observability"
	"github.com/jonathan/slide-redesigner/internal/pipeline"
	"github.com/spf13/cobra"
)

var bindCmd = &cobra.Command{
	Use:   "bind",
	Short: "Bind a slide's content into a fixed layout",
	Long:  "Splits a slide's shapes, binds them into the named layout template and derives typography and image parameters, skipping layout resolution.",
	RunE:  runBind,
}

var (
	bindSlide     string
	bindLayout    string
	bindAssetsDir string
	bindOutput    string
)

func init() {
	bindCmd.Flags().StringVarP(&bindSlide, "slide", "s", "", "Path to slide metadata JSON (required)")
	bindCmd.Flags().StringVarP(&bindLayout, "layout", "l", "", "Layout template name (required)")
	bindCmd.Flags().StringVar(&bindAssetsDir, "assets-dir", "", "Deck asset root holding images_final/")
	bindCmd.Flags().StringVarP(&bindOutput, "out", "o", "", "Path to output slide JSON (default stdout)")

	if err := bindCmd.MarkFlagRequired("slide"); err != nil {
		panic(fmt.Sprintf("failed to mark slide flag as required: %v", err))
	}
	if err := bindCmd.MarkFlagRequired("layout"); err != nil {
		panic(fmt.Sprintf("failed to mark layout flag as required: %v", err))
	}

	rootCmd.AddCommand(bindCmd)
}

func runBind(_ *cobra.Command, _ []string) error {
	slide, err := pipeline.LoadSlide(bindSlide)
	if err != nil {
		return err
	}

	cfg := *appConfig
	if bindAssetsDir != "" {
		cfg.AssetsDir = bindAssetsDir
	}
	engine, err := pipeline.NewEngineFromConfig(&cfg, appLogger, nil)
	if err != nil {
		return err
	}

	result, err := engine.RedesignSlide(pipeline.SlideInput{Metadata: slide, Layout: bindLayout})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintSlide(result)
		printer.PrintViolations(result.Violations)
	}
	return writeJSON(bindOutput, result)
}
