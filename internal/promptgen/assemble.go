package promptgen

import (
	"strings"

	"scenedirector/internal/catalog"
	"scenedirector/internal/domain"
)

// AssembleBase builds the backend-agnostic prompt skeleton from the scene.
// Contributions are concatenated in a fixed order; empty fields contribute
// nothing and leave no stray separators. Every strategy consumes this same
// output.
func AssembleBase(state domain.SceneState) string {
	var parts []string

	add := func(v string) {
		v = strings.TrimSpace(v)
		if v != "" {
			parts = append(parts, v)
		}
	}

	add(state.Subject)
	for _, c := range state.Characters {
		add(c.Content)
	}
	add(state.Location)
	add(catalog.VisualPresetPhrase(state.VisualPreset))
	add(colorPhrase(state))
	add(catalog.AtmospherePhrase(state.Atmosphere))
	add(catalog.LightingPhrase(state.Lighting))
	add(catalog.DirectorPhrase(state.Director))
	add(coalesce(state.CustomCamera, catalog.CameraPhrase(state.Camera)))
	add(coalesce(state.CustomLens, catalog.LensPhrase(state.Lens)))
	add(coalesce(state.CustomShot, catalog.ShotTypePhrase(state.ShotType)))
	add(catalog.DepthOfFieldPhrase(state.DepthOfField))

	return strings.Join(parts, ", ")
}

// colorPhrase renders the color contribution. Non-empty custom color slots
// take precedence over a named palette.
func colorPhrase(state domain.SceneState) string {
	var colors []string
	for _, hex := range state.CustomColors {
		hex = strings.TrimSpace(hex)
		if hex != "" {
			colors = append(colors, hex)
		}
	}
	if len(colors) > 0 {
		return "color palette of " + strings.Join(colors, " ")
	}
	return catalog.ColorPalettePhrase(state.ColorPalette)
}

func coalesce(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}
