package domain

import (
	"reflect"
	"strings"

	"github.com/google/uuid"
)

// Character is a single cast entry in the scene. The ID is an opaque token
// that stays stable for the lifetime of the entry; Content is the free-form
// description contributed to the prompt.
type Character struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// SceneState is the full set of user-chosen fields for a scene. It is a
// value type: every mutation helper returns a fresh copy so callers can
// treat snapshots as immutable.
type SceneState struct {
	Subject        string `json:"subject"`
	Location       string `json:"location"`
	NegativePrompt string `json:"negative_prompt"`

	Camera       string `json:"camera"`
	Lens         string `json:"lens"`
	ShotType     string `json:"shot_type"`
	DepthOfField string `json:"depth_of_field"`
	AspectRatio  string `json:"aspect_ratio"`
	Atmosphere   string `json:"atmosphere"`
	VisualPreset string `json:"visual_preset"`
	Lighting     string `json:"lighting"`
	ColorPalette string `json:"color_palette"`
	Director     string `json:"director"`
	Model        string `json:"model"`

	CustomCamera string    `json:"custom_camera"`
	CustomLens   string    `json:"custom_lens"`
	CustomShot   string    `json:"custom_shot"`
	CustomColors [6]string `json:"custom_colors"`

	Creativity int `json:"creativity"`
	Variation  int `json:"variation"`
	Uniqueness int `json:"uniqueness"`

	CreativeControlsEnabled bool `json:"creative_controls_enabled"`

	Characters []Character `json:"characters"`
}

// Documented session defaults.
const (
	DefaultModel        = "midjourney"
	DefaultLens         = "50mm"
	DefaultShotType     = "medium-shot"
	DefaultDepthOfField = "medium"
	DefaultAspectRatio  = "1:1"
	DefaultSliderValue  = 50
)

// NewSceneState returns a scene populated with the documented defaults.
func NewSceneState() SceneState {
	return SceneState{
		Model:                   DefaultModel,
		Lens:                    DefaultLens,
		ShotType:                DefaultShotType,
		DepthOfField:            DefaultDepthOfField,
		AspectRatio:             DefaultAspectRatio,
		Creativity:              DefaultSliderValue,
		Variation:               DefaultSliderValue,
		Uniqueness:              DefaultSliderValue,
		CreativeControlsEnabled: true,
	}
}

// ClampSlider constrains a slider value to the [0,100] range.
func ClampSlider(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Clone returns a deep copy of the state. The character slice is the only
// field that needs explicit copying.
func (s SceneState) Clone() SceneState {
	out := s
	if len(s.Characters) > 0 {
		out.Characters = append([]Character(nil), s.Characters...)
	}
	return out
}

// AddCharacter appends a new character entry with a fresh opaque ID and
// returns the updated state. Blank content is ignored.
func (s SceneState) AddCharacter(content string) SceneState {
	content = strings.TrimSpace(content)
	if content == "" {
		return s
	}
	out := s.Clone()
	out.Characters = append(out.Characters, Character{
		ID:      uuid.NewString(),
		Content: content,
	})
	return out
}

// RemoveCharacter drops the entry with the given ID, preserving insertion
// order of the rest. Unknown IDs leave the state untouched.
func (s SceneState) RemoveCharacter(id string) SceneState {
	out := s.Clone()
	kept := out.Characters[:0]
	for _, c := range out.Characters {
		if c.ID == id {
			continue
		}
		kept = append(kept, c)
	}
	out.Characters = kept
	return out
}

// Equal reports structural equality between two states, character lists
// included.
func (s SceneState) Equal(other SceneState) bool {
	a, b := s, other
	if len(a.Characters) != len(b.Characters) {
		return false
	}
	for i := range a.Characters {
		if a.Characters[i] != b.Characters[i] {
			return false
		}
	}
	a.Characters, b.Characters = nil, nil
	return reflect.DeepEqual(a, b)
}
