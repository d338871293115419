package binding

import (
	"fmt"

	"github.com/jonathan/slide-redesigner/internal/types"
)

// Policy selects how paragraphs are spread across text slots.
type Policy string

const (
	// RoundRobin puts paragraph i into text slot i mod n.
	RoundRobin Policy = "round_robin"
	// Sequential puts shape i's paragraphs into text slot i and merges every
	// remaining shape into the last text slot.
	Sequential Policy = "sequential"
)

// ParsePolicy maps a config value to a Policy. Empty selects RoundRobin.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", RoundRobin:
		return RoundRobin, nil
	case Sequential:
		return Sequential, nil
	}
	return "", &Error{Message: fmt.Sprintf("unknown distribution policy %q", s)}
}

// Result is the bound element list plus a count of content that found no slot.
type Result struct {
	Elements          []types.BoundElement
	DroppedParagraphs int
	DroppedImages     int
	DroppedTables     int
}

// Dropped reports whether any content was left unbound.
func (r Result) Dropped() bool {
	return r.DroppedParagraphs > 0 || r.DroppedImages > 0 || r.DroppedTables > 0
}

// Bind maps split content onto the template's slots. Output follows template
// order; image and table slots with nothing left to consume are omitted.
func Bind(tpl *types.LayoutTemplate, split Split, policy Policy) (Result, error) {
	if tpl == nil {
		return Result{}, &Error{Message: "template is nil"}
	}

	numText := tpl.CountSlots(types.ElementText)
	var buckets [][]types.Paragraph
	var dropped int
	switch policy {
	case "", RoundRobin:
		buckets, dropped = roundRobin(split.Paragraphs(), numText)
	case Sequential:
		buckets, dropped = sequential(split.Texts, numText)
	default:
		return Result{}, &Error{Message: fmt.Sprintf("unknown distribution policy %q", policy)}
	}

	res := Result{
		Elements:          make([]types.BoundElement, 0, len(tpl.Elements)),
		DroppedParagraphs: dropped,
	}
	textIdx, imageIdx, tableIdx := 0, 0, 0
	for _, slot := range tpl.Elements {
		el := types.NewBoundElement(slot)
		switch slot.Type {
		case types.ElementText:
			el.Content = buckets[textIdx]
			textIdx++
			inheritColor(&el)
		case types.ElementImage:
			if imageIdx >= len(split.Images) {
				continue
			}
			el.Source = split.Images[imageIdx]
			imageIdx++
		case types.ElementTable:
			if tableIdx >= len(split.Tables) {
				continue
			}
			el.Source = split.Tables[tableIdx]
			tableIdx++
		default:
			continue
		}
		res.Elements = append(res.Elements, el)
	}

	res.DroppedImages = len(split.Images) - imageIdx
	res.DroppedTables = len(split.Tables) - tableIdx
	return res, nil
}

func roundRobin(paras []types.Paragraph, n int) ([][]types.Paragraph, int) {
	if n == 0 {
		return nil, len(paras)
	}
	buckets := make([][]types.Paragraph, n)
	for i, p := range paras {
		buckets[i%n] = append(buckets[i%n], p)
	}
	return buckets, 0
}

func sequential(groups [][]types.Paragraph, n int) ([][]types.Paragraph, int) {
	if n == 0 {
		dropped := 0
		for _, g := range groups {
			dropped += len(g)
		}
		return nil, dropped
	}
	buckets := make([][]types.Paragraph, n)
	for i, g := range groups {
		slot := i
		if slot >= n {
			slot = n - 1
		}
		buckets[slot] = append(buckets[slot], g...)
	}
	return buckets, 0
}

// inheritColor copies the colour of the first run of a structured first
// paragraph onto the slot style.
func inheritColor(el *types.BoundElement) {
	if len(el.Content) == 0 {
		return
	}
	first := el.Content[0]
	if first.Plain || len(first.Runs) == 0 {
		return
	}
	rgb, ok := first.Runs[0].Color.RGB()
	if !ok {
		return
	}
	if el.Style == nil {
		el.Style = &types.SlotStyle{}
	}
	el.Style.Color = rgb.Hex()
}
