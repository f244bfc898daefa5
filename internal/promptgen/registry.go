package promptgen

import (
	"fmt"

	"scenedirector/internal/domain"
)

// supportedModels fixes the closed backend set and its listing order.
var supportedModels = []Model{
	ModelMidjourney,
	ModelNiji,
	ModelStableDiffusion,
	ModelFlux,
	ModelLeonardo,
	ModelIdeogram,
	ModelDalle,
	ModelGPTImage,
	ModelNanoBanana,
}

// Lookup resolves a backend identifier to its Model. Identifiers outside
// the closed set fail with domain.ErrUnsupportedModel; the caller must
// never fall back to a default.
func Lookup(id string) (Model, error) {
	m := Model(id)
	if !IsSupported(m) {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedModel, id)
	}
	return m, nil
}

// IsSupported reports whether the identifier belongs to the closed set.
func IsSupported(m Model) bool {
	for _, candidate := range supportedModels {
		if candidate == m {
			return true
		}
	}
	return false
}

// SupportedModels returns the backend identifiers in their fixed order.
func SupportedModels() []Model {
	return append([]Model(nil), supportedModels...)
}

// PromptStyle reports whether the backend expects tag soup or natural
// language.
func (m Model) PromptStyle() PromptStyle {
	switch m {
	case ModelMidjourney, ModelNiji, ModelStableDiffusion, ModelLeonardo:
		return StyleTags
	case ModelFlux, ModelIdeogram, ModelDalle, ModelGPTImage, ModelNanoBanana:
		return StyleNatural
	}
	return StyleNatural
}

// SupportsNegativePrompt reports whether the backend accepts a negative
// prompt. When false, a non-empty negative prompt is silently dropped
// during finalization. Note that ideogram answers true here yet its
// finalizer deliberately never emits the text; see that strategy.
func (m Model) SupportsNegativePrompt() bool {
	switch m {
	case ModelMidjourney, ModelNiji, ModelStableDiffusion, ModelLeonardo, ModelIdeogram, ModelGPTImage, ModelNanoBanana:
		return true
	case ModelFlux, ModelDalle:
		return false
	}
	return false
}

// TranslateSliders maps the three 0-100 sliders onto the backend's native
// parameter tokens. The mapping is total: out-of-range input is clamped,
// never rejected.
func (m Model) TranslateSliders(creativity, variation, uniqueness int) SliderParams {
	creativity = domain.ClampSlider(creativity)
	variation = domain.ClampSlider(variation)
	uniqueness = domain.ClampSlider(uniqueness)

	switch m {
	case ModelMidjourney:
		return midjourneySliders(creativity, variation, uniqueness)
	case ModelNiji:
		return nijiSliders(creativity, variation, uniqueness)
	case ModelStableDiffusion:
		return stableDiffusionSliders(creativity, variation, uniqueness)
	case ModelFlux:
		return fluxSliders(creativity, variation, uniqueness)
	case ModelLeonardo:
		return leonardoSliders(creativity, variation, uniqueness)
	case ModelIdeogram:
		return ideogramSliders(creativity, variation, uniqueness)
	case ModelDalle, ModelNanoBanana:
		// No tunable creativity knobs on these backends.
		return SliderParams{}
	case ModelGPTImage:
		return gptImageSliders(creativity, variation, uniqueness)
	}
	return SliderParams{}
}

// FinalizePrompt appends aspect ratio, negative prompt, and slider tokens
// to the assembled base prompt in the backend's own order and syntax.
func (m Model) FinalizePrompt(ctx ModelContext) string {
	switch m {
	case ModelMidjourney:
		return finalizeMidjourney(ctx)
	case ModelNiji:
		return finalizeNiji(ctx)
	case ModelStableDiffusion:
		return finalizeStableDiffusion(ctx)
	case ModelFlux:
		return finalizeFlux(ctx)
	case ModelLeonardo:
		return finalizeLeonardo(ctx)
	case ModelIdeogram:
		return finalizeIdeogram(ctx)
	case ModelDalle:
		return finalizeDalle(ctx)
	case ModelGPTImage:
		return finalizeGPTImage(ctx)
	case ModelNanoBanana:
		return finalizeNanoBanana(ctx)
	}
	return ctx.BasePrompt
}
