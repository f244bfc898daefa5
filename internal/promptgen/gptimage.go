package promptgen

import "strings"

// GPT image prompts are conversational: sliders become full instruction
// sentences through hard thresholds rather than numeric scales, and the
// middle band of each slider stays silent. The variation slider has no
// counterpart on this backend.
func gptImageSliders(creativity, _, uniqueness int) SliderParams {
	var params SliderParams
	switch {
	case creativity > 70:
		params.Creativity = "Interpret the scene with bold creative liberties."
	case creativity < 30:
		params.Creativity = "Stay strictly faithful to the described scene."
	}
	if uniqueness > 70 {
		params.Quality = "Push for an unconventional, unexpected composition."
	}
	return params
}

func finalizeGPTImage(ctx ModelContext) string {
	var sentences []string
	if ctx.AspectRatioDisplay != "" {
		sentences = append(sentences, "Compose the image at a "+ctx.AspectRatioDisplay+" aspect ratio.")
	}
	if ctx.NegativePrompt != "" {
		sentences = append(sentences, "Avoid: "+ctx.NegativePrompt+".")
	}
	if ctx.CreativeControlsEnabled {
		sentences = appendNonEmpty(sentences, ctx.SliderParams.Creativity, ctx.SliderParams.Quality)
	}
	return proseAppend(ctx.BasePrompt, sentences)
}

// proseAppend joins follow-up sentences onto a base prompt, closing the
// base with a period when anything follows it.
func proseAppend(base string, sentences []string) string {
	if len(sentences) == 0 {
		return base
	}
	out := base
	if out != "" && !strings.HasSuffix(out, ".") {
		out += "."
	}
	return out + " " + strings.Join(sentences, " ")
}
