// Package validation checks a bound, typographed slide and reports violations.
package validation

import (
	"github.com/jonathan/slide-redesigner/internal/binding"
	"github.com/jonathan/slide-redesigner/internal/types"
	"github.com/jonathan/slide-redesigner/internal/typography"
)

// Violation types.
const (
	TypeContentDropped    = "content_dropped"
	TypeTextOverflow      = "text_overflow"
	TypeSlotOutOfBounds   = "slot_out_of_bounds"
	TypeSlotCountExceeded = "slot_count_exceeded"
)

// Severities.
const (
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// ValidateSlide runs every check against a slide's bound elements. typo is
// used to detect text rendered at the minimum size; nil skips that check.
func ValidateSlide(tpl *types.LayoutTemplate, res binding.Result, typo *typography.Engine) (*types.Violations, error) {
	if tpl == nil {
		return nil, &Error{Message: "template is nil"}
	}

	var all []types.Violation
	all = append(all, CheckDropped(res)...)
	all = append(all, CheckGeometry(res.Elements)...)
	all = append(all, CheckSlotCounts(tpl, res.Elements)...)
	if typo != nil {
		all = append(all, CheckOverflow(res.Elements, typo)...)
	}
	return &types.Violations{Violations: all}, nil
}
