package promptgen

import (
	"fmt"
	"strings"
)

// Stable Diffusion keeps the tag prompt on the first line and stacks its
// parameters on separate lines underneath, the way A1111-style frontends
// record them. CFG scale rescales 0-100 onto 0-30 at one decimal place,
// denoising strength onto 0-1 at two decimals; clip skip is a threshold.
func stableDiffusionSliders(creativity, variation, uniqueness int) SliderParams {
	params := SliderParams{
		Creativity: fmt.Sprintf("CFG scale: %.1f", float64(creativity)*0.3),
		Variation:  fmt.Sprintf("Denoising strength: %.2f", float64(variation)/100),
	}
	if uniqueness > 70 {
		params.Quality = "Clip skip: 2"
	}
	return params
}

func finalizeStableDiffusion(ctx ModelContext) string {
	lines := []string{ctx.BasePrompt}
	if ctx.NegativePrompt != "" {
		lines = append(lines, "Negative prompt: "+ctx.NegativePrompt)
	}
	if ctx.AspectRatioDisplay != "" {
		lines = append(lines, "Aspect ratio: "+ctx.AspectRatioDisplay)
	}
	if ctx.CreativeControlsEnabled {
		lines = appendNonEmpty(lines, ctx.SliderParams.Creativity, ctx.SliderParams.Variation, ctx.SliderParams.Quality)
	}
	return strings.Join(lines, "\n")
}
