package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jonathan/slide-redesigner/internal/layout"
	"github.com/jonathan/slide-redesigner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deckInputs(n int) []SlideInput {
	inputs := make([]SlideInput, 0, n)
	for i := 1; i <= n; i++ {
		inputs = append(inputs, SlideInput{Metadata: &types.SlideMetadata{
			SlideNum: i,
			Shapes:   []types.ShapeRecord{{HasText: true, Text: "Welcome everyone"}},
		}})
	}
	return inputs
}

func TestRedesignDeck_PreservesOrder(t *testing.T) {
	e := newTestEngine(t, Options{})

	var mu sync.Mutex
	var events []ProgressEvent
	deck, err := e.RedesignDeck(context.Background(), deckInputs(12), DeckOptions{
		Source:  "deck.pptx",
		Workers: 4,
		OnProgress: func(ev ProgressEvent) {
			mu.Lock()
			events = append(events, ev)
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, deck.RunID)
	assert.Equal(t, "deck.pptx", deck.Source)
	require.Len(t, deck.Slides, 12)
	for i, s := range deck.Slides {
		assert.Equal(t, i+1, s.SlideNum)
		assert.Equal(t, layout.TitleCenter, s.Layout)
	}

	// one start event plus every stage of every slide, all stamped with the run id
	require.Len(t, events, 1+12*len(StageRegistry))
	perSlide := map[int][]string{}
	for _, ev := range events {
		assert.Equal(t, deck.RunID, ev.RunID)
		if ev.SlideNum > 0 {
			perSlide[ev.SlideNum] = append(perSlide[ev.SlideNum], ev.Step)
		}
	}
	want := make([]string, 0, len(StageRegistry))
	for _, def := range StageRegistry {
		want = append(want, string(def.Name))
	}
	require.Len(t, perSlide, 12)
	for num, steps := range perSlide {
		assert.Equal(t, want, steps, "slide %d", num)
	}
}

func TestRedesignDeck_FailsWholeDeck(t *testing.T) {
	e := newTestEngine(t, Options{})
	inputs := deckInputs(5)
	inputs[2].Predictions = []types.Prediction{{Layout: layout.Quote, Confidence: 0.9}}

	deck, err := e.RedesignDeck(context.Background(), inputs, DeckOptions{Workers: 2})
	require.Error(t, err)
	assert.Nil(t, deck)

	var slideErr *SlideError
	require.ErrorAs(t, err, &slideErr)
	assert.Equal(t, 3, slideErr.SlideNum)
}

func TestRedesignDeck_Cancelled(t *testing.T) {
	e := newTestEngine(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	deck, err := e.RedesignDeck(ctx, deckInputs(3), DeckOptions{Workers: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, deck)
}

func TestRedesignDeck_Empty(t *testing.T) {
	e := newTestEngine(t, Options{})

	deck, err := e.RedesignDeck(context.Background(), nil, DeckOptions{})
	require.NoError(t, err)
	assert.Empty(t, deck.Slides)
}

func TestRedesignDeck_MatchesSequentialRun(t *testing.T) {
	e := newTestEngine(t, Options{})
	inputs := deckInputs(8)

	parallel, err := e.RedesignDeck(context.Background(), inputs, DeckOptions{Workers: 8})
	require.NoError(t, err)
	serial, err := e.RedesignDeck(context.Background(), inputs, DeckOptions{Workers: 1})
	require.NoError(t, err)

	assert.Equal(t, serial.Slides, parallel.Slides)
}

func TestRedesignSlide_ProgressSkipsPredictForForcedLayout(t *testing.T) {
	e := newTestEngine(t, Options{})

	var events []ProgressEvent
	slide, err := e.RedesignSlide(SlideInput{
		Metadata:   deckInputs(1)[0].Metadata,
		Layout:     layout.TextOnly,
		OnProgress: func(ev ProgressEvent) { events = append(events, ev) },
	})
	require.NoError(t, err)

	steps := make([]Stage, 0, len(events))
	for _, ev := range events {
		steps = append(steps, Stage(ev.Step))
		assert.Equal(t, Stage(ev.Step).Category(), ev.Category)
		assert.Equal(t, 1, ev.SlideNum)
	}
	assert.Equal(t, []Stage{
		StageFeatures, StageResolve, StageTemplate, StageSplit,
		StageBind, StageTypography, StageImages, StageValidate,
	}, steps)
	assert.Contains(t, events[1].Message, RuleForced)
	assert.Equal(t, slide, events[len(events)-1].Content)
}

func TestStageCategory(t *testing.T) {
	assert.Equal(t, CategoryLayout, StageResolve.Category())
	assert.Equal(t, CategoryCheck, StageValidate.Category())
	assert.Empty(t, Stage("nope").Category())
}
