package binding

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/slide-redesigner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitContent_OrderAndStreams(t *testing.T) {
	shapes := []types.ShapeRecord{
		{HasText: true, Text: "Title"},
		{HasImage: true, ImagePath: "images/a.png"},
		{HasText: true, Paragraphs: []types.Paragraph{types.PlainParagraph("one"), types.PlainParagraph("two")}},
		{HasTable: true, TableCSV: "tables/t1.csv"},
		{HasImage: true, ImagePath: "images/b.png"},
		{HasImage: true},
		{},
	}

	split := SplitContent(shapes, SplitOptions{})

	require.Len(t, split.Texts, 2)
	assert.Equal(t, "Title", split.Texts[0][0].Text())
	assert.Equal(t, "two", split.Texts[1][1].Text())
	assert.Equal(t, []string{"images/a.png", "images/b.png"}, split.Images)
	assert.Equal(t, []string{"tables/t1.csv"}, split.Tables)
}

func TestSplitContent_PlainTextLines(t *testing.T) {
	split := SplitContent([]types.ShapeRecord{
		{HasText: true, Text: "first\r\n\n  \nsecond"},
		{HasText: true, Text: "   "},
	}, SplitOptions{})

	require.Len(t, split.Texts, 1)
	require.Len(t, split.Texts[0], 2)
	assert.True(t, split.Texts[0][0].Plain)
	assert.Equal(t, "first", split.Texts[0][0].Text())
	assert.Equal(t, "second", split.Texts[0][1].Text())
}

func TestSplitContent_EnhancedAssets(t *testing.T) {
	assets := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(assets, EnhancedImagesDir), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, EnhancedImagesDir, "a.png"), []byte("png"), 0644))

	shapes := []types.ShapeRecord{
		{HasImage: true, ImagePath: "images/a.png"},
		{HasImage: true, ImagePath: "images/b.png"},
	}

	split := SplitContent(shapes, SplitOptions{AssetsDir: assets})
	assert.Equal(t, []string{"images_final/a.png", "images/b.png"}, split.Images)

	split = SplitContent(shapes, SplitOptions{})
	assert.Equal(t, []string{"images/a.png", "images/b.png"}, split.Images)
}

func TestSplit_Paragraphs(t *testing.T) {
	split := Split{Texts: [][]types.Paragraph{
		{types.PlainParagraph("a"), types.PlainParagraph("b")},
		{types.PlainParagraph("c")},
	}}

	var got []string
	for _, p := range split.Paragraphs() {
		got = append(got, p.Text())
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
