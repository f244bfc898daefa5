package promptgen

// Nano Banana is conversational and has no tunable creativity knobs: the
// sliders are accepted but contribute nothing. Exclusions are phrased as a
// plain instruction sentence.
func finalizeNanoBanana(ctx ModelContext) string {
	var sentences []string
	if ctx.AspectRatioDisplay != "" {
		sentences = append(sentences, "Frame the image at a "+ctx.AspectRatioDisplay+" aspect ratio.")
	}
	if ctx.NegativePrompt != "" {
		sentences = append(sentences, "Do not include "+ctx.NegativePrompt+".")
	}
	return proseAppend(ctx.BasePrompt, sentences)
}
