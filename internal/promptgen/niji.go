package promptgen

import (
	"fmt"
	"strings"
)

// Niji shares Midjourney's flag grammar but has no quality knob and pins
// its model version with a literal trailing flag.
func nijiSliders(creativity, variation, _ int) SliderParams {
	return SliderParams{
		Creativity: fmt.Sprintf("--s %d", creativity*10),
		Variation:  fmt.Sprintf("--chaos %d", variation),
	}
}

func finalizeNiji(ctx ModelContext) string {
	parts := []string{ctx.BasePrompt}
	if ctx.AspectRatioDisplay != "" {
		parts = append(parts, "--ar "+ctx.AspectRatioDisplay)
	}
	if ctx.NegativePrompt != "" {
		parts = append(parts, "--no "+ctx.NegativePrompt)
	}
	if ctx.CreativeControlsEnabled {
		parts = appendNonEmpty(parts, ctx.SliderParams.Creativity, ctx.SliderParams.Variation)
	}
	parts = append(parts, "--niji 6")
	return strings.Join(parts, " ")
}
