package pipeline

import (
	"fmt"
	"time"

	"github.com/jonathan/slide-redesigner/internal/binding"
	"github.com/jonathan/slide-redesigner/internal/config"
	"github.com/jonathan/slide-redesigner/internal/features"
	"github.com/jonathan/slide-redesigner/internal/imagery"
	"github.com/jonathan/slide-redesigner/internal/layout"
	"github.com/jonathan/slide-redesigner/internal/logging"
	"github.com/jonathan/slide-redesigner/internal/observability"
	"github.com/jonathan/slide-redesigner/internal/types"
	"github.com/jonathan/slide-redesigner/internal/typography"
	"github.com/jonathan/slide-redesigner/internal/validation"
)

// RuleForced is the resolution reason recorded when the caller fixes the layout.
const RuleForced = "forced"

// Options configures an Engine. Zero values select the built-in defaults.
type Options struct {
	Catalog       *layout.Catalog
	ResolverRules *layout.ResolverRules
	Typography    *typography.Rules
	Images        *imagery.Rules
	Predictor     layout.Predictor
	Distribution  binding.Policy
	AssetsDir     string
	Logger        logging.Logger
	Metrics       *observability.Metrics
}

// Engine redesigns individual slides. It is safe for concurrent use: every
// collaborator is read-only after construction.
type Engine struct {
	catalog    *layout.Catalog
	resolver   *layout.Resolver
	predictor  layout.Predictor
	typography *typography.Engine
	images     *imagery.Engine
	policy     binding.Policy
	splitOpts  binding.SplitOptions
	logger     logging.Logger
	metrics    *observability.Metrics
}

// NewEngine creates an Engine from opts.
func NewEngine(opts Options) (*Engine, error) {
	catalog := opts.Catalog
	if catalog == nil {
		var err error
		if catalog, err = layout.LoadDefaultCatalog(); err != nil {
			return nil, fmt.Errorf("failed to load layout catalog: %w", err)
		}
	}

	resolverRules := layout.DefaultResolverRules()
	if opts.ResolverRules != nil {
		resolverRules = *opts.ResolverRules
	}
	if err := resolverRules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resolver rules: %w", err)
	}
	typoRules := typography.DefaultRules()
	if opts.Typography != nil {
		typoRules = *opts.Typography
	}
	if err := typoRules.Validate(); err != nil {
		return nil, err
	}
	imageRules := imagery.DefaultRules()
	if opts.Images != nil {
		imageRules = *opts.Images
	}
	if err := imageRules.Validate(); err != nil {
		return nil, err
	}

	policy, err := binding.ParsePolicy(string(opts.Distribution))
	if err != nil {
		return nil, err
	}

	predictor := opts.Predictor
	if predictor == nil {
		predictor = layout.NewRulePredictor()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}

	return &Engine{
		catalog:    catalog,
		resolver:   layout.NewResolver(resolverRules),
		predictor:  predictor,
		typography: typography.NewEngine(typoRules),
		images:     imagery.NewEngine(imageRules),
		policy:     policy,
		splitOpts:  binding.SplitOptions{AssetsDir: opts.AssetsDir},
		logger:     logger,
		metrics:    opts.Metrics,
	}, nil
}

// NewEngineFromConfig builds an Engine from a validated Config, loading any
// extra templates from cfg.TemplatesDir.
func NewEngineFromConfig(cfg *config.Config, logger logging.Logger, metrics *observability.Metrics) (*Engine, error) {
	catalog, err := layout.LoadCatalog(cfg.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load layout catalog: %w", err)
	}
	return NewEngine(Options{
		Catalog:       catalog,
		ResolverRules: &cfg.Resolver,
		Typography:    &cfg.Typography,
		Images:        &cfg.Images,
		Distribution:  binding.Policy(cfg.Distribution),
		AssetsDir:     cfg.AssetsDir,
		Logger:        logger,
		Metrics:       metrics,
	})
}

// Catalog returns the engine's template catalog.
func (e *Engine) Catalog() *layout.Catalog {
	return e.catalog
}

// SlideInput is one slide's metadata plus optional ranked predictions.
// Without predictions the rule-based predictor labels the slide. A non-empty
// Layout skips resolution entirely. OnProgress, if set, receives one event per
// completed stage.
type SlideInput struct {
	Metadata    *types.SlideMetadata
	Predictions []types.Prediction
	Layout      string
	OnProgress  ProgressCallback
}

// RedesignSlide runs every stage for one slide. Errors are *SlideError.
func (e *Engine) RedesignSlide(in SlideInput) (*types.RedesignedSlide, error) {
	start := time.Now()
	meta := in.Metadata
	if meta == nil {
		meta = &types.SlideMetadata{}
	}
	log := e.logger.With(map[string]interface{}{"slide": meta.SlideNum})

	fail := func(stage Stage, err error) (*types.RedesignedSlide, error) {
		e.metrics.ObserveFailure(string(stage))
		log.WithError(err).Error("slide failed", map[string]interface{}{"stage": string(stage)})
		return nil, &SlideError{SlideNum: meta.SlideNum, Stage: stage, Cause: err}
	}

	emit := func(stage Stage, message string, content any) {
		if in.OnProgress != nil {
			in.OnProgress(ProgressEvent{
				Step:     string(stage),
				Category: stage.Category(),
				Message:  message,
				SlideNum: meta.SlideNum,
				Content:  content,
			})
		}
	}

	feats := features.Extract(meta.Shapes)
	emit(StageFeatures, fmt.Sprintf("slide %d: %d shapes, %d text blocks, %d images",
		meta.SlideNum, feats.NumShapes, feats.NumTextBlocks, feats.NumImages), feats)

	res := layout.Resolution{Layout: in.Layout, Rule: RuleForced}
	predictions := in.Predictions
	if in.Layout == "" {
		if len(predictions) == 0 {
			predictions = e.predictor.Predict(feats)
			emit(StagePredict, fmt.Sprintf("slide %d: %d predictions from the rule predictor", meta.SlideNum, len(predictions)), predictions)
		}
		var err error
		res, err = e.resolver.Resolve(predictions, feats)
		if err != nil {
			return fail(StageResolve, err)
		}
	}
	log.Debug("layout resolved", map[string]interface{}{
		"layout": res.Layout,
		"rule":   res.Rule,
	})
	emit(StageResolve, fmt.Sprintf("slide %d -> %s (%s)", meta.SlideNum, res.Layout, res.Rule), res)

	tpl, err := e.catalog.Get(res.Layout)
	if err != nil {
		return fail(StageTemplate, err)
	}
	emit(StageTemplate, fmt.Sprintf("slide %d: template %s with %d slots", meta.SlideNum, tpl.Name, len(tpl.Elements)), nil)

	split := binding.SplitContent(meta.Shapes, e.splitOpts)
	emit(StageSplit, fmt.Sprintf("slide %d: %d paragraphs, %d images, %d tables",
		meta.SlideNum, len(split.Paragraphs()), len(split.Images), len(split.Tables)), nil)

	bound, err := binding.Bind(tpl, split, e.policy)
	if err != nil {
		return fail(StageBind, err)
	}
	emit(StageBind, fmt.Sprintf("slide %d: %d elements bound", meta.SlideNum, len(bound.Elements)), nil)
	if bound.Dropped() {
		log.Warn("content dropped", map[string]interface{}{
			"layout":     res.Layout,
			"paragraphs": bound.DroppedParagraphs,
			"images":     bound.DroppedImages,
			"tables":     bound.DroppedTables,
		})
		e.metrics.ObserveDropped(string(types.ElementText), bound.DroppedParagraphs)
		e.metrics.ObserveDropped(string(types.ElementImage), bound.DroppedImages)
		e.metrics.ObserveDropped(string(types.ElementTable), bound.DroppedTables)
	}

	e.typography.Apply(bound.Elements)
	emit(StageTypography, fmt.Sprintf("slide %d: typography applied", meta.SlideNum), nil)
	e.images.Apply(bound.Elements, res.Layout)
	emit(StageImages, fmt.Sprintf("slide %d: image rules applied", meta.SlideNum), nil)

	violations, err := validation.ValidateSlide(tpl, bound, e.typography)
	if err != nil {
		return fail(StageValidate, err)
	}

	e.metrics.ObserveSlide(res.Layout, res.Rule, time.Since(start))
	log.Info("slide redesigned", map[string]interface{}{
		"layout":     res.Layout,
		"rule":       res.Rule,
		"elements":   len(bound.Elements),
		"violations": len(violations.Violations),
	})

	out := &types.RedesignedSlide{
		SlideNum:         meta.SlideNum,
		Layout:           res.Layout,
		ResolutionReason: res.Rule,
		Features:         feats,
		Elements:         bound.Elements,
		Violations:       violations.Violations,
	}
	emit(StageValidate, fmt.Sprintf("slide %d: %d violations", meta.SlideNum, len(out.Violations)), out)
	return out, nil
}
