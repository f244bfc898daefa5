package catalog

var lensOrder = []string{
	"14mm-fisheye",
	"24mm",
	"35mm",
	"50mm",
	"85mm",
	"100mm-macro",
	"anamorphic",
}

var lenses = map[string]Option{
	"14mm-fisheye": {ID: "14mm-fisheye", Name: "14mm Fisheye", Phrase: "14mm fisheye lens, curved ultra-wide distortion"},
	"24mm":         {ID: "24mm", Name: "24mm Wide", Phrase: "24mm wide-angle lens"},
	"35mm":         {ID: "35mm", Name: "35mm", Phrase: "35mm lens, natural field of view"},
	"50mm":         {ID: "50mm", Name: "50mm Prime", Phrase: "50mm prime lens"},
	"85mm":         {ID: "85mm", Name: "85mm Portrait", Phrase: "85mm portrait lens, flattering compression"},
	"100mm-macro":  {ID: "100mm-macro", Name: "100mm Macro", Phrase: "100mm macro lens, fine detail"},
	"anamorphic":   {ID: "anamorphic", Name: "Anamorphic", Phrase: "anamorphic lens, oval bokeh and horizontal flares"},
}

var shotTypeOrder = []string{
	"extreme-close-up",
	"close-up",
	"medium-shot",
	"full-shot",
	"wide-shot",
	"establishing-shot",
	"pov",
}

var shotTypes = map[string]Option{
	"extreme-close-up":  {ID: "extreme-close-up", Name: "Extreme Close-Up", Phrase: "extreme close-up"},
	"close-up":          {ID: "close-up", Name: "Close-Up", Phrase: "close-up shot"},
	"medium-shot":       {ID: "medium-shot", Name: "Medium Shot", Phrase: "medium shot"},
	"full-shot":         {ID: "full-shot", Name: "Full Shot", Phrase: "full body shot"},
	"wide-shot":         {ID: "wide-shot", Name: "Wide Shot", Phrase: "wide shot"},
	"establishing-shot": {ID: "establishing-shot", Name: "Establishing Shot", Phrase: "establishing shot"},
	"pov":               {ID: "pov", Name: "POV", Phrase: "first-person point of view shot"},
}

var depthOfFieldOrder = []string{
	"shallow",
	"medium",
	"deep",
	"macro",
	"tilt-shift",
}

var depthsOfField = map[string]Option{
	"shallow":    {ID: "shallow", Name: "Shallow", Phrase: "shallow depth of field, creamy bokeh"},
	"medium":     {ID: "medium", Name: "Medium", Phrase: "medium depth of field"},
	"deep":       {ID: "deep", Name: "Deep Focus", Phrase: "deep focus, everything sharp"},
	"macro":      {ID: "macro", Name: "Macro Focus", Phrase: "razor-thin macro focus plane"},
	"tilt-shift": {ID: "tilt-shift", Name: "Tilt-Shift", Phrase: "tilt-shift focus, miniature effect"},
}

// Lenses returns the selectable lenses in display order.
func Lenses() []Option { return listOptions(lensOrder, lenses) }

// ShotTypes returns the selectable shot types in display order.
func ShotTypes() []Option { return listOptions(shotTypeOrder, shotTypes) }

// DepthsOfField returns the selectable depth-of-field values in display order.
func DepthsOfField() []Option { return listOptions(depthOfFieldOrder, depthsOfField) }

// LensPhrase returns the prompt phrase for a lens, or "" when unknown.
func LensPhrase(id string) string { return optionPhrase(lenses, id) }

// ShotTypePhrase returns the prompt phrase for a shot type, or "" when unknown.
func ShotTypePhrase(id string) string { return optionPhrase(shotTypes, id) }

// DepthOfFieldPhrase returns the prompt phrase for a DOF value, or "" when unknown.
func DepthOfFieldPhrase(id string) string { return optionPhrase(depthsOfField, id) }
