package binding

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jonathan/slide-redesigner/internal/types"
)

// EnhancedImagesDir is the asset subdirectory holding post-processed images.
const EnhancedImagesDir = "images_final"

// SplitOptions tunes SplitContent.
type SplitOptions struct {
	// AssetsDir is the deck's asset root. When set, image references are
	// swapped for their enhanced counterpart if one exists on disk.
	AssetsDir string
}

// Split holds a slide's content as three ordered streams.
type Split struct {
	Texts  [][]types.Paragraph
	Images []string
	Tables []string
}

// Paragraphs flattens Texts in shape order, then in-shape paragraph order.
func (s Split) Paragraphs() []types.Paragraph {
	var all []types.Paragraph
	for _, group := range s.Texts {
		all = append(all, group...)
	}
	return all
}

// SplitContent walks shapes once, in order. A shape may feed more than one
// stream; shapes with no recognised content are skipped.
func SplitContent(shapes []types.ShapeRecord, opts SplitOptions) Split {
	var out Split
	for _, shape := range shapes {
		if shape.HasText {
			if paras := shapeParagraphs(shape); len(paras) > 0 {
				out.Texts = append(out.Texts, paras)
			}
		}
		if shape.HasImage && shape.ImagePath != "" {
			out.Images = append(out.Images, resolveAsset(shape.ImagePath, opts.AssetsDir))
		}
		if shape.HasTable && shape.TableCSV != "" {
			out.Tables = append(out.Tables, shape.TableCSV)
		}
	}
	return out
}

// shapeParagraphs prefers the structured paragraphs and falls back to one
// plain paragraph per non-blank line of the shape text.
func shapeParagraphs(shape types.ShapeRecord) []types.Paragraph {
	if len(shape.Paragraphs) > 0 {
		paras := make([]types.Paragraph, len(shape.Paragraphs))
		copy(paras, shape.Paragraphs)
		return paras
	}

	var paras []types.Paragraph
	for _, line := range strings.Split(shape.Text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		paras = append(paras, types.PlainParagraph(line))
	}
	return paras
}

func resolveAsset(ref, assetsDir string) string {
	if assetsDir == "" {
		return ref
	}
	enhanced := path.Join(EnhancedImagesDir, path.Base(filepath.ToSlash(ref)))
	if _, err := os.Stat(filepath.Join(assetsDir, filepath.FromSlash(enhanced))); err == nil {
		return enhanced
	}
	return ref
}
