package catalog

var aspectRatioOrder = []string{
	"1:1",
	"4:5",
	"3:4",
	"4:3",
	"16:9",
	"9:16",
	"21:9",
}

var aspectRatios = map[string]Option{
	"1:1":  {ID: "1:1", Name: "Square (1:1)"},
	"4:5":  {ID: "4:5", Name: "Portrait (4:5)"},
	"3:4":  {ID: "3:4", Name: "Portrait (3:4)"},
	"4:3":  {ID: "4:3", Name: "Landscape (4:3)"},
	"16:9": {ID: "16:9", Name: "Widescreen (16:9)"},
	"9:16": {ID: "9:16", Name: "Vertical (9:16)"},
	"21:9": {ID: "21:9", Name: "Ultrawide (21:9)"},
}

// AspectRatios returns the selectable ratios in display order.
func AspectRatios() []Option { return listOptions(aspectRatioOrder, aspectRatios) }

// AspectRatioDisplay resolves the display text for an aspect ratio
// selection. Unset or unknown selections resolve to "".
func AspectRatioDisplay(id string) string {
	if _, ok := aspectRatios[id]; ok {
		return id
	}
	return ""
}
