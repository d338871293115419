package validation

import (
	"fmt"

	"github.com/jonathan/slide-redesigner/internal/binding"
	"github.com/jonathan/slide-redesigner/internal/types"
	"github.com/jonathan/slide-redesigner/internal/typography"
)

// CheckDropped reports content the binder could not place, one violation per content type.
func CheckDropped(res binding.Result) []types.Violation {
	var out []types.Violation
	add := func(n int, typ types.ElementType, noun string) {
		if n <= 0 {
			return
		}
		count := n
		slotType := typ
		out = append(out, types.Violation{
			Type:     TypeContentDropped,
			Severity: SeverityWarning,
			Details:  fmt.Sprintf("%d %s had no %s slot and were dropped", n, noun, typ),
			SlotType: &slotType,
			Count:    &count,
		})
	}
	add(res.DroppedParagraphs, types.ElementText, "paragraph(s)")
	add(res.DroppedImages, types.ElementImage, "image(s)")
	add(res.DroppedTables, types.ElementTable, "table(s)")
	return out
}

// CheckOverflow flags text slots dense enough to fall past every font threshold.
func CheckOverflow(elements []types.BoundElement, typo *typography.Engine) []types.Violation {
	var out []types.Violation
	for i := range elements {
		el := &elements[i]
		if el.Type != types.ElementText || el.CharCount() == 0 {
			continue
		}
		if !typo.AtMinimum(el) {
			continue
		}
		idx := i
		slotType := el.Type
		chars := el.CharCount()
		out = append(out, types.Violation{
			Type:      TypeTextOverflow,
			Severity:  SeverityWarning,
			Details:   fmt.Sprintf("text density %.0f chars per unit area uses the minimum font size", typo.Density(el)),
			SlotIndex: &idx,
			SlotType:  &slotType,
			CharCount: &chars,
		})
	}
	return out
}
