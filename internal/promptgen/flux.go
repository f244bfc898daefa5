package promptgen

import (
	"fmt"
	"strings"
)

// Flux reads natural language followed by a bracketed parameter block on
// its own line. Guidance rescales 0-100 onto 0-20 at one decimal, steps
// onto the 20-50 range; variance is a labelled threshold. The backend has
// no negative prompt: that field is silently dropped.
func fluxSliders(creativity, variation, uniqueness int) SliderParams {
	variance := "low"
	switch {
	case variation > 70:
		variance = "high"
	case variation > 30:
		variance = "moderate"
	}
	return SliderParams{
		Creativity: fmt.Sprintf("[guidance: %.1f]", float64(creativity)*0.2),
		Variation:  fmt.Sprintf("[variance: %s]", variance),
		Quality:    fmt.Sprintf("[steps: %d]", 20+(uniqueness*30)/100),
	}
}

func finalizeFlux(ctx ModelContext) string {
	var block []string
	if ctx.AspectRatioDisplay != "" {
		block = append(block, "[aspect ratio: "+ctx.AspectRatioDisplay+"]")
	}
	if ctx.CreativeControlsEnabled {
		block = appendNonEmpty(block, ctx.SliderParams.Creativity, ctx.SliderParams.Variation, ctx.SliderParams.Quality)
	}
	if len(block) == 0 {
		return ctx.BasePrompt
	}
	return ctx.BasePrompt + "\n" + strings.Join(block, " ")
}
