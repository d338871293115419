package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedesignCommand_SlidesDir(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dir := t.TempDir()
	slidesDir := filepath.Join(dir, "slides")
	writeFixture(t, slidesDir, "slide_01.json", sampleSlide)
	writeFixture(t, slidesDir, "slide_02.json", `{"slide_num": 2, "shapes": [{"has_text": true, "text": "Thank you", "has_image": false, "has_table": false}]}`)
	outPath := filepath.Join(dir, "deck.json")
	metricsPath := filepath.Join(dir, "metrics.prom")

	output, err := exec.Command(binaryPath, "redesign",
		"--slides-dir", slidesDir,
		"--workers", "2",
		"--out", outPath,
		"--metrics-file", metricsPath,
	).CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Redesigned 2 slide(s)")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var deck struct {
		RunID  string       `json:"run_id"`
		Source string       `json:"source"`
		Slides []boundSlide `json:"slides"`
	}
	require.NoError(t, json.Unmarshal(data, &deck))
	assert.NotEmpty(t, deck.RunID)
	assert.Equal(t, "slides", deck.Source)
	require.Len(t, deck.Slides, 2)
	for _, s := range deck.Slides {
		assert.NotEmpty(t, s.Layout)
		assert.NotEmpty(t, s.ResolutionReason)
	}

	metrics, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "slides_processed_total")
}

func TestRedesignCommand_SingleSlideWithPredictions(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dir := t.TempDir()
	slidePath := writeFixture(t, dir, "slide.json", sampleSlide)
	predsPath := writeFixture(t, dir, "preds.json", `{"slides": [{"slide_num": 1, "predictions": [
		{"layout": "three_column", "confidence": 0.8},
		{"layout": "text_only", "confidence": 0.1}
	]}]}`)

	output, err := exec.Command(binaryPath, "redesign", "--slide", slidePath, "--predictions", predsPath).Output()
	require.NoError(t, err)

	var deck struct {
		Slides []boundSlide `json:"slides"`
	}
	require.NoError(t, json.Unmarshal(output, &deck))
	require.Len(t, deck.Slides, 1)
	assert.Equal(t, "three_column", deck.Slides[0].Layout)
	assert.Equal(t, "model", deck.Slides[0].ResolutionReason)
	assert.Len(t, deck.Slides[0].Elements, 3)
}

func TestRedesignCommand_InputFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "no input", args: []string{"redesign"}},
		{name: "both inputs", args: []string{"redesign", "--slides-dir", ".", "--slide", "x.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := exec.Command(binaryPath, tt.args...).CombinedOutput()
			assert.Error(t, err)
		})
	}
}
