package handlers

import (
	"net/http"

	"scenedirector/internal/catalog"
	"scenedirector/internal/promptgen"
)

type catalogResponse struct {
	Cameras       []catalog.Camera   `json:"cameras"`
	Lenses        []catalog.Option   `json:"lenses"`
	ShotTypes     []catalog.Option   `json:"shot_types"`
	DepthsOfField []catalog.Option   `json:"depths_of_field"`
	AspectRatios  []catalog.Option   `json:"aspect_ratios"`
	Atmospheres   []catalog.Option   `json:"atmospheres"`
	VisualPresets []catalog.Option   `json:"visual_presets"`
	Lighting      []catalog.Option   `json:"lighting"`
	ColorPalettes []catalog.Option   `json:"color_palettes"`
	Directors     []catalog.Director `json:"directors"`
	Models        []promptgen.Model  `json:"models"`
}

// Catalog returns every selectable vocabulary in display order, plus the
// supported target models.
func (a *App) Catalog(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, catalogResponse{
		Cameras:       catalog.Cameras(),
		Lenses:        catalog.Lenses(),
		ShotTypes:     catalog.ShotTypes(),
		DepthsOfField: catalog.DepthsOfField(),
		AspectRatios:  catalog.AspectRatios(),
		Atmospheres:   catalog.Atmospheres(),
		VisualPresets: catalog.VisualPresets(),
		Lighting:      catalog.LightingSetups(),
		ColorPalettes: catalog.ColorPalettes(),
		Directors:     catalog.Directors(),
		Models:        promptgen.SupportedModels(),
	})
}
