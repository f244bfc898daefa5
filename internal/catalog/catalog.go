// Package catalog holds the closed vocabularies a scene is assembled from:
// cameras, lenses, shot types, atmospheres, visual presets, lighting setups,
// color palettes, and director styles, along with the conflict rule tables
// that govern which combinations are allowed. All tables are immutable
// process-wide configuration.
package catalog

// Option is a selectable vocabulary entry. Phrase is the text contributed
// to the assembled prompt; Name is the display label.
type Option struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phrase string `json:"phrase,omitempty"`
}

func listOptions(order []string, table map[string]Option) []Option {
	out := make([]Option, 0, len(order))
	for _, id := range order {
		if opt, ok := table[id]; ok {
			out = append(out, opt)
		}
	}
	return out
}

func optionPhrase(table map[string]Option, id string) string {
	if opt, ok := table[id]; ok {
		return opt.Phrase
	}
	return ""
}
