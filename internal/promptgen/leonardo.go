package promptgen

import (
	"fmt"
	"strings"
)

// Leonardo appends bracketed key/value parameters inline after the tag
// prompt. Guidance scale rescales 0-100 onto integer 0-20, init strength
// onto 0-1 at two decimals; contrast is a labelled threshold.
func leonardoSliders(creativity, variation, uniqueness int) SliderParams {
	contrast := "medium"
	if uniqueness > 60 {
		contrast = "high"
	}
	return SliderParams{
		Creativity: fmt.Sprintf("[guidance_scale: %d]", creativity/5),
		Variation:  fmt.Sprintf("[init_strength: %.2f]", float64(variation)/100),
		Quality:    fmt.Sprintf("[contrast: %s]", contrast),
	}
}

func finalizeLeonardo(ctx ModelContext) string {
	parts := []string{ctx.BasePrompt}
	if ctx.AspectRatioDisplay != "" {
		parts = append(parts, "[aspect: "+ctx.AspectRatioDisplay+"]")
	}
	if ctx.NegativePrompt != "" {
		parts = append(parts, "[negative: "+ctx.NegativePrompt+"]")
	}
	if ctx.CreativeControlsEnabled {
		parts = appendNonEmpty(parts, ctx.SliderParams.Creativity, ctx.SliderParams.Variation, ctx.SliderParams.Quality)
	}
	return strings.Join(parts, " ")
}
