package catalog

// Director is a selectable director style. Block lists are independent of
// the camera-category rules: either source is enough to block a value.
type Director struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Phrase             string   `json:"phrase"`
	BlockedAtmospheres []string `json:"blocked_atmospheres,omitempty"`
	BlockedPresets     []string `json:"blocked_presets,omitempty"`
}

var directorOrder = []string{
	"wes-anderson",
	"david-fincher",
	"christopher-nolan",
	"denis-villeneuve",
	"greta-gerwig",
	"tim-burton",
	"stanley-kubrick",
	"wong-kar-wai",
}

var directors = map[string]Director{
	"wes-anderson": {
		ID:                 "wes-anderson",
		Name:               "Wes Anderson",
		Phrase:             "directed by Wes Anderson, symmetrical composition, storybook pastel color story",
		BlockedAtmospheres: []string{"noir", "stormy"},
		BlockedPresets:     []string{"film-noir", "cyberpunk"},
	},
	"david-fincher": {
		ID:                 "david-fincher",
		Name:               "David Fincher",
		Phrase:             "directed by David Fincher, desaturated greens, surgical precision",
		BlockedAtmospheres: []string{"dreamy", "golden-hour"},
		BlockedPresets:     []string{"pastel-illustration"},
	},
	"christopher-nolan": {
		ID:     "christopher-nolan",
		Name:   "Christopher Nolan",
		Phrase: "directed by Christopher Nolan, IMAX scale, practical grandeur",
	},
	"denis-villeneuve": {
		ID:             "denis-villeneuve",
		Name:           "Denis Villeneuve",
		Phrase:         "directed by Denis Villeneuve, monumental minimalism, hazy scale",
		BlockedPresets: []string{"anime"},
	},
	"greta-gerwig": {
		ID:     "greta-gerwig",
		Name:   "Greta Gerwig",
		Phrase: "directed by Greta Gerwig, warm naturalism, lived-in color",
	},
	"tim-burton": {
		ID:                 "tim-burton",
		Name:               "Tim Burton",
		Phrase:             "directed by Tim Burton, gothic whimsy, crooked silhouettes",
		BlockedAtmospheres: []string{"serene"},
		BlockedPresets:     []string{"documentary"},
	},
	"stanley-kubrick": {
		ID:     "stanley-kubrick",
		Name:   "Stanley Kubrick",
		Phrase: "directed by Stanley Kubrick, one-point perspective, clinical symmetry",
	},
	"wong-kar-wai": {
		ID:                 "wong-kar-wai",
		Name:               "Wong Kar-wai",
		Phrase:             "directed by Wong Kar-wai, saturated neon, step-printed motion blur",
		BlockedAtmospheres: []string{"epic-vista"},
	},
}

// DirectorByID looks up a director style by its identifier.
func DirectorByID(id string) (Director, bool) {
	d, ok := directors[id]
	return d, ok
}

// Directors returns the selectable director styles in display order.
func Directors() []Director {
	out := make([]Director, 0, len(directorOrder))
	for _, id := range directorOrder {
		if d, ok := directors[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

// DirectorPhrase returns the prompt phrase for a director, or "" when unknown.
func DirectorPhrase(id string) string {
	if d, ok := directors[id]; ok {
		return d.Phrase
	}
	return ""
}
