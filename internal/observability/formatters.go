// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/slide-redesigner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// PrintFeatures outputs the structural feature vector of one slide.
func (p *Printer) PrintFeatures(slideNum int, f *types.SlideFeatures) {
	if f == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Shapes:       %d   Text blocks: %d\n", f.NumShapes, f.NumTextBlocks))
	sb.WriteString(fmt.Sprintf("Text length:  %d   (avg %.2f)\n", f.TotalTextLength, f.AvgTextLen))
	sb.WriteString(fmt.Sprintf("Images:       %d   largest %.4f  avg %.4f\n", f.NumImages, f.LargestImageArea, f.AvgImageArea))
	sb.WriteString(fmt.Sprintf("Aspect ratio: %.2f\n", f.ImgAspectRatio))
	sb.WriteString(fmt.Sprintf("Table: %s  Quote: %s  Digits: %s  Agenda: %s\n",
		yesNo(f.HasTable), yesNo(f.HasQuote), yesNo(f.HasDigits), yesNo(f.IsAgenda)))
	sb.WriteString(fmt.Sprintf("Density:      %.3f", f.SlideDensity))

	p.printBox(fmt.Sprintf("SLIDE %d FEATURES", slideNum), sb.String())
}

// PrintResolution outputs the ranked predictions and the layout the resolver settled on.
func (p *Printer) PrintResolution(slideNum int, predictions []types.Prediction, layout, rule string) {
	var sb strings.Builder
	count := min(len(predictions), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("#%d  %-20s %.2f\n", i+1, predictions[i].Layout, predictions[i].Confidence))
	}
	if len(predictions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(predictions)-maxItemsToShow))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Layout: %s\n", layout))
	sb.WriteString(fmt.Sprintf("Rule:   %s", rule))

	p.printBox(fmt.Sprintf("SLIDE %d LAYOUT", slideNum), sb.String())
}

// PrintSlide outputs the bound elements of a redesigned slide.
func (p *Printer) PrintSlide(slide *types.RedesignedSlide) {
	if slide == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Layout: %s (%s)\n\n", slide.Layout, slide.ResolutionReason))
	for i, el := range slide.Elements {
		sb.WriteString(fmt.Sprintf("[%d] %-5s at (%.2f, %.2f) %.2fx%.2f\n", i, el.Type, el.X, el.Y, el.Width, el.Height))
		switch el.Type {
		case types.ElementText:
			first := ""
			if len(el.Content) > 0 {
				first = el.Content[0].Text()
			}
			sb.WriteString(fmt.Sprintf("    %d paragraph(s), %.0fpt x%.2f\n", len(el.Content), el.FontSize, el.LineSpacing))
			if first != "" {
				sb.WriteString(fmt.Sprintf("    \"%s\"\n", truncate(first, 40)))
			}
		case types.ElementImage:
			sb.WriteString(fmt.Sprintf("    %s  fit=%s scale=%.2f", el.Source, el.Fit, el.Scale))
			if el.Overlay != nil {
				sb.WriteString(fmt.Sprintf(" overlay=%s@%.2f", el.Overlay.Color, el.Overlay.Opacity))
			}
			sb.WriteString("\n")
		case types.ElementTable:
			sb.WriteString(fmt.Sprintf("    %s\n", el.Source))
		}
	}

	p.printBox(fmt.Sprintf("SLIDE %d REDESIGN", slide.SlideNum), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDeckSummary outputs layout counts and violation totals for a whole deck.
func (p *Printer) PrintDeckSummary(deck *types.RedesignedDeck) {
	if deck == nil {
		return
	}

	layouts := make(map[string]int)
	violations := 0
	for _, s := range deck.Slides {
		layouts[s.Layout]++
		violations += len(s.Violations)
	}
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:    %s\n", deck.RunID))
	sb.WriteString(fmt.Sprintf("Slides: %d\n\n", len(deck.Slides)))
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  • %-20s %d\n", name, layouts[name]))
	}
	sb.WriteString(fmt.Sprintf("\nViolations: %d", violations))

	p.printBox("DECK SUMMARY", sb.String())
}

// PrintViolations outputs any violations found on a slide.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations []types.Violation) {
	if len(violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations)))

	for i, v := range violations {
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", v.Type, v.Severity))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(v.Details, 50)))
		if i < len(violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SLIDE VIOLATIONS", sb.String())
}
