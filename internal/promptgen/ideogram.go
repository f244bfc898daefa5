package promptgen

import (
	"fmt"
	"strings"
)

// Ideogram takes natural language with a bracketed parameter line. Both
// sliders map through labelled thresholds; the third token is unused.
//
// The backend's capability contract declares negative-prompt support, but
// this finalizer deliberately never emits the text: in practice the
// backend tends to paint whatever the exclusion names. The asymmetry is
// intentional, not a missing branch.
func ideogramSliders(creativity, variation, _ int) SliderParams {
	style := "precise"
	switch {
	case creativity > 70:
		style = "wild"
	case creativity > 30:
		style = "balanced"
	}
	chaos := "low"
	if variation > 70 {
		chaos = "high"
	}
	return SliderParams{
		Creativity: fmt.Sprintf("[style: %s]", style),
		Variation:  fmt.Sprintf("[chaos: %s]", chaos),
	}
}

func finalizeIdeogram(ctx ModelContext) string {
	var block []string
	if ctx.AspectRatioDisplay != "" {
		block = append(block, "[aspect ratio: "+ctx.AspectRatioDisplay+"]")
	}
	if ctx.CreativeControlsEnabled {
		block = appendNonEmpty(block, ctx.SliderParams.Creativity, ctx.SliderParams.Variation)
	}
	if len(block) == 0 {
		return ctx.BasePrompt
	}
	return ctx.BasePrompt + "\n" + strings.Join(block, " ")
}
