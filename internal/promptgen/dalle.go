package promptgen

// dallePrefix keeps DALL-E from rewriting the prompt before rendering it.
const dallePrefix = "I NEED this exact scene with no additions or rewording: "

// DALL-E exposes no tunable creativity knobs and no negative prompt; the
// sliders are accepted but have no observable effect, and the exclusion
// text is silently dropped. The whole prompt is prefixed with a literal
// instruction phrase and the aspect ratio is described in prose.
func finalizeDalle(ctx ModelContext) string {
	out := dallePrefix + ctx.BasePrompt
	if ctx.AspectRatioDisplay != "" {
		out += ". Use a " + ctx.AspectRatioDisplay + " aspect ratio composition."
	}
	return out
}
