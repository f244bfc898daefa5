package promptgen

import (
	"fmt"
	"strings"
)

// Midjourney takes a comma-separated tag prompt followed by a trailing
// flag list. Stylize rescales 0-100 onto the native 0-1000 range, chaos
// maps through unchanged, and quality is a hard threshold.
func midjourneySliders(creativity, variation, uniqueness int) SliderParams {
	quality := "--q 1"
	if uniqueness > 50 {
		quality = "--q 2"
	}
	return SliderParams{
		Creativity: fmt.Sprintf("--s %d", creativity*10),
		Variation:  fmt.Sprintf("--chaos %d", variation),
		Quality:    quality,
	}
}

func finalizeMidjourney(ctx ModelContext) string {
	parts := []string{ctx.BasePrompt}
	if ctx.AspectRatioDisplay != "" {
		parts = append(parts, "--ar "+ctx.AspectRatioDisplay)
	}
	if ctx.NegativePrompt != "" {
		parts = append(parts, "--no "+ctx.NegativePrompt)
	}
	if ctx.CreativeControlsEnabled {
		parts = appendNonEmpty(parts, ctx.SliderParams.Creativity, ctx.SliderParams.Variation, ctx.SliderParams.Quality)
	}
	return strings.Join(parts, " ")
}

func appendNonEmpty(parts []string, tokens ...string) []string {
	for _, t := range tokens {
		if t != "" {
			parts = append(parts, t)
		}
	}
	return parts
}
