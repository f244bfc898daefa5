package promptgen

import (
	"fmt"
	"strings"

	"scenedirector/internal/catalog"
	"scenedirector/internal/domain"
)

// Compile renders the scene into the final prompt string for its selected
// target model. Every invocation recomputes from scratch; compiling the
// same state twice yields byte-identical output.
func Compile(state domain.SceneState) (string, error) {
	return CompileFor(state, state.Model)
}

// CompileFor renders the scene for an explicit target model, ignoring the
// scene's own selection. An identifier outside the supported set fails the
// whole compile.
func CompileFor(state domain.SceneState, modelID string) (string, error) {
	model, err := Lookup(modelID)
	if err != nil {
		return "", fmt.Errorf("compile: %w", err)
	}

	ctx := ModelContext{
		BasePrompt:              AssembleBase(state),
		AspectRatioDisplay:      catalog.AspectRatioDisplay(state.AspectRatio),
		NegativePrompt:          strings.TrimSpace(state.NegativePrompt),
		CreativeControlsEnabled: state.CreativeControlsEnabled,
		SliderParams:            model.TranslateSliders(state.Creativity, state.Variation, state.Uniqueness),
	}

	return model.FinalizePrompt(ctx), nil
}
