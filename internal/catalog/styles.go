package catalog

var atmosphereOrder = []string{
	"noir",
	"dreamy",
	"serene",
	"stormy",
	"fog",
	"golden-hour",
	"neon",
	"epic-vista",
	"claustrophobic",
	"dusty",
}

var atmospheres = map[string]Option{
	"noir":           {ID: "noir", Name: "Noir", Phrase: "noir atmosphere, hard shadows and cigarette haze"},
	"dreamy":         {ID: "dreamy", Name: "Dreamy", Phrase: "dreamy soft-focus atmosphere"},
	"serene":         {ID: "serene", Name: "Serene", Phrase: "calm, serene mood"},
	"stormy":         {ID: "stormy", Name: "Stormy", Phrase: "brooding storm clouds, charged air"},
	"fog":            {ID: "fog", Name: "Fog", Phrase: "thick rolling fog"},
	"golden-hour":    {ID: "golden-hour", Name: "Golden Hour", Phrase: "warm golden hour glow"},
	"neon":           {ID: "neon", Name: "Neon", Phrase: "humming neon haze"},
	"epic-vista":     {ID: "epic-vista", Name: "Epic Vista", Phrase: "vast epic vista stretching to the horizon"},
	"claustrophobic": {ID: "claustrophobic", Name: "Claustrophobic", Phrase: "tight claustrophobic tension"},
	"dusty":          {ID: "dusty", Name: "Dusty", Phrase: "dust hanging in shafts of light"},
}

var visualPresetOrder = []string{
	"cinematic",
	"film-noir",
	"documentary",
	"anime",
	"cyberpunk",
	"pastel-illustration",
	"vintage-film",
	"macro-detail",
	"sweeping-landscape",
	"portrait-studio",
}

var visualPresets = map[string]Option{
	"cinematic":           {ID: "cinematic", Name: "Cinematic", Phrase: "cinematic film still, 35mm grain"},
	"film-noir":           {ID: "film-noir", Name: "Film Noir", Phrase: "high-contrast black and white film noir"},
	"documentary":         {ID: "documentary", Name: "Documentary", Phrase: "unvarnished documentary realism"},
	"anime":               {ID: "anime", Name: "Anime", Phrase: "hand-drawn anime style, bold linework"},
	"cyberpunk":           {ID: "cyberpunk", Name: "Cyberpunk", Phrase: "rain-slick cyberpunk cityscape aesthetic"},
	"pastel-illustration": {ID: "pastel-illustration", Name: "Pastel Illustration", Phrase: "soft pastel illustration, gentle gradients"},
	"vintage-film":        {ID: "vintage-film", Name: "Vintage Film", Phrase: "faded vintage film stock, light leaks"},
	"macro-detail":        {ID: "macro-detail", Name: "Macro Detail", Phrase: "extreme macro detail, visible texture"},
	"sweeping-landscape":  {ID: "sweeping-landscape", Name: "Sweeping Landscape", Phrase: "sweeping landscape photography"},
	"portrait-studio":     {ID: "portrait-studio", Name: "Portrait Studio", Phrase: "controlled studio portrait look"},
}

var lightingOrder = []string{
	"natural",
	"golden-hour-light",
	"studio-softbox",
	"rembrandt",
	"neon-glow",
	"candlelight",
	"harsh-noon",
	"moonlight",
}

var lightingSetups = map[string]Option{
	"natural":           {ID: "natural", Name: "Natural Light", Phrase: "natural available light"},
	"golden-hour-light": {ID: "golden-hour-light", Name: "Golden Hour Light", Phrase: "low warm golden hour light"},
	"studio-softbox":    {ID: "studio-softbox", Name: "Studio Softbox", Phrase: "soft diffused studio softbox lighting"},
	"rembrandt":         {ID: "rembrandt", Name: "Rembrandt", Phrase: "rembrandt lighting, triangle of light on the cheek"},
	"neon-glow":         {ID: "neon-glow", Name: "Neon Glow", Phrase: "colored neon glow as key light"},
	"candlelight":       {ID: "candlelight", Name: "Candlelight", Phrase: "flickering candlelight, deep warm shadows"},
	"harsh-noon":        {ID: "harsh-noon", Name: "Harsh Noon", Phrase: "harsh overhead noon sun"},
	"moonlight":         {ID: "moonlight", Name: "Moonlight", Phrase: "cold blue moonlight"},
}

var colorPaletteOrder = []string{
	"warm-earth",
	"cool-blues",
	"monochrome",
	"pastel",
	"neon-pop",
	"muted-film",
	"jewel-tones",
}

var colorPalettes = map[string]Option{
	"warm-earth":  {ID: "warm-earth", Name: "Warm Earth", Phrase: "warm earth-tone palette"},
	"cool-blues":  {ID: "cool-blues", Name: "Cool Blues", Phrase: "cool blue palette"},
	"monochrome":  {ID: "monochrome", Name: "Monochrome", Phrase: "monochrome palette"},
	"pastel":      {ID: "pastel", Name: "Pastel", Phrase: "soft pastel palette"},
	"neon-pop":    {ID: "neon-pop", Name: "Neon Pop", Phrase: "saturated neon pop palette"},
	"muted-film":  {ID: "muted-film", Name: "Muted Film", Phrase: "muted filmic palette"},
	"jewel-tones": {ID: "jewel-tones", Name: "Jewel Tones", Phrase: "rich jewel-tone palette"},
}

// Atmospheres returns the selectable atmospheres in display order.
func Atmospheres() []Option { return listOptions(atmosphereOrder, atmospheres) }

// VisualPresets returns the selectable visual presets in display order.
func VisualPresets() []Option { return listOptions(visualPresetOrder, visualPresets) }

// LightingSetups returns the selectable lighting setups in display order.
func LightingSetups() []Option { return listOptions(lightingOrder, lightingSetups) }

// ColorPalettes returns the selectable color palettes in display order.
func ColorPalettes() []Option { return listOptions(colorPaletteOrder, colorPalettes) }

// AtmospherePhrase returns the prompt phrase for an atmosphere, or "" when unknown.
func AtmospherePhrase(id string) string { return optionPhrase(atmospheres, id) }

// VisualPresetPhrase returns the prompt phrase for a visual preset, or "" when unknown.
func VisualPresetPhrase(id string) string { return optionPhrase(visualPresets, id) }

// LightingPhrase returns the prompt phrase for a lighting setup, or "" when unknown.
func LightingPhrase(id string) string { return optionPhrase(lightingSetups, id) }

// ColorPalettePhrase returns the prompt phrase for a palette, or "" when unknown.
func ColorPalettePhrase(id string) string { return optionPhrase(colorPalettes, id) }
