// Package promptgen compiles a scene into the final prompt string for one
// of the supported image-generation backends. A backend-independent
// assembler builds the shared textual skeleton; a per-model strategy then
// translates the creative sliders and finalizes the prompt in the
// backend's own syntax.
package promptgen

// Model identifies a supported target backend. The set is closed: every
// per-model operation dispatches exhaustively over these constants.
type Model string

const (
	ModelMidjourney      Model = "midjourney"
	ModelNiji            Model = "niji"
	ModelStableDiffusion Model = "stable-diffusion"
	ModelFlux            Model = "flux"
	ModelLeonardo        Model = "leonardo"
	ModelIdeogram        Model = "ideogram"
	ModelDalle           Model = "dalle"
	ModelGPTImage        Model = "gpt-image"
	ModelNanoBanana      Model = "nano-banana"
)

// PromptStyle documents how a backend expects its prompt to read. It is a
// hint for display layers; the compiler itself never branches on it.
type PromptStyle string

const (
	StyleTags    PromptStyle = "tags"
	StyleNatural PromptStyle = "natural"
)

// SliderParams holds the backend-specific translation of the three
// creative sliders. Each token is either a ready-to-insert syntax
// fragment or empty; tokens produced for one model are never reused by
// another.
type SliderParams struct {
	Creativity string
	Variation  string
	Quality    string
}

// ModelContext is the handoff from assembler to strategy for a single
// compile pass. It is rebuilt from scratch on every compile.
type ModelContext struct {
	BasePrompt              string
	AspectRatioDisplay      string
	NegativePrompt          string
	CreativeControlsEnabled bool
	SliderParams            SliderParams
}
