package validation

import (
	"fmt"

	"github.com/jonathan/slide-redesigner/internal/types"
)

const epsilon = 1e-9

// CheckGeometry flags elements whose frame leaves the unit slide.
func CheckGeometry(elements []types.BoundElement) []types.Violation {
	var out []types.Violation
	for i, el := range elements {
		if inUnit(el.X) && inUnit(el.Y) && inUnit(el.Width) && inUnit(el.Height) &&
			el.X+el.Width <= 1+epsilon && el.Y+el.Height <= 1+epsilon {
			continue
		}
		idx := i
		slotType := el.Type
		out = append(out, types.Violation{
			Type:     TypeSlotOutOfBounds,
			Severity: SeverityError,
			Details: fmt.Sprintf("slot frame (x=%.3f y=%.3f w=%.3f h=%.3f) extends outside the slide",
				el.X, el.Y, el.Width, el.Height),
			SlotIndex: &idx,
			SlotType:  &slotType,
		})
	}
	return out
}

// CheckSlotCounts flags any element type bound more often than the template declares it.
func CheckSlotCounts(tpl *types.LayoutTemplate, elements []types.BoundElement) []types.Violation {
	counts := make(map[types.ElementType]int)
	for _, el := range elements {
		counts[el.Type]++
	}

	var out []types.Violation
	for _, typ := range []types.ElementType{types.ElementText, types.ElementImage, types.ElementTable} {
		if limit := tpl.CountSlots(typ); counts[typ] > limit {
			slotType := typ
			out = append(out, types.Violation{
				Type:     TypeSlotCountExceeded,
				Severity: SeverityError,
				Details:  fmt.Sprintf("%d %s elements bound to a template with %d %s slots", counts[typ], typ, limit, typ),
				SlotType: &slotType,
			})
		}
	}
	return out
}

func inUnit(v float64) bool {
	return v >= -epsilon && v <= 1+epsilon
}
