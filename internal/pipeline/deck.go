package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/slide-redesigner/internal/types"
)

// ProgressEvent represents a progress update during deck processing
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	SlideNum int    `json:"slide_num,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when deck progress occurs. It may be called
// from several goroutines at once.
type ProgressCallback func(event ProgressEvent)

// DeckOptions holds configuration for RedesignDeck
type DeckOptions struct {
	Source     string
	Workers    int
	OnProgress ProgressCallback
}

func emitProgress(opts *DeckOptions, event ProgressEvent) {
	if opts.OnProgress != nil {
		opts.OnProgress(event)
	}
}

// RedesignDeck redesigns every slide with at most opts.Workers slides in
// flight. The first slide error cancels the remaining work and no deck is
// returned. Output slides keep input order.
func (e *Engine) RedesignDeck(ctx context.Context, slides []SlideInput, opts DeckOptions) (*types.RedesignedDeck, error) {
	runID := uuid.New().String()
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	e.logger.Info("deck started", map[string]interface{}{
		"run_id":  runID,
		"slides":  len(slides),
		"workers": workers,
	})
	emitProgress(&opts, ProgressEvent{
		Step:     "deck",
		Category: CategoryAnalysis,
		Message:  fmt.Sprintf("redesigning %d slides", len(slides)),
		RunID:    runID,
	})

	results := make([]types.RedesignedSlide, len(slides))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range slides {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			in := slides[i]
			if opts.OnProgress != nil {
				in.OnProgress = func(ev ProgressEvent) {
					ev.RunID = runID
					opts.OnProgress(ev)
				}
			}
			slide, err := e.RedesignSlide(in)
			if err != nil {
				return err
			}
			results[i] = *slide
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.logger.WithError(err).Error("deck failed", map[string]interface{}{"run_id": runID})
		return nil, err
	}

	e.logger.Info("deck completed", map[string]interface{}{"run_id": runID, "slides": len(results)})
	return &types.RedesignedDeck{
		RunID:  runID,
		Source: opts.Source,
		Slides: results,
	}, nil
}
