package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the slide_agent binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "slide_agent"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/slide_agent ./cmd/slide_agent'", binaryPath)
	}

	return binaryPath
}

// writeFixture writes content to name inside dir and returns the full path.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

const sampleSlide = `{
  "slide_index": 0,
  "slide_num": 1,
  "shapes": [
    {
      "shape_index": 0,
      "width_norm": 0.8,
      "height_norm": 0.2,
      "has_text": true,
      "text": "Quarterly review",
      "has_image": false,
      "has_table": false
    },
    {
      "shape_index": 1,
      "width_norm": 0.8,
      "height_norm": 0.5,
      "has_text": true,
      "text": "Revenue grew across every region\nChurn fell",
      "paragraphs": [
        "Revenue grew across every region",
        {"level": 1, "is_bullet": true, "runs": [{"text": "Churn fell", "color_rgb": "#1F4E79"}]}
      ],
      "has_image": false,
      "has_table": false
    }
  ]
}`
