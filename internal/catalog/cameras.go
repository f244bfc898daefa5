package catalog

// Camera categories drive the conflict rules: every camera belongs to one
// category, and the category decides which atmospheres, presets, and
// depth-of-field values it blocks.
const (
	CategoryGround     = "ground"
	CategoryAerial     = "aerial"
	CategoryMacro      = "macro"
	CategoryUnderwater = "underwater"
)

// Camera is a selectable camera or rig setup.
type Camera struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Phrase   string `json:"phrase"`
}

var cameraOrder = []string{
	"handheld",
	"steadicam",
	"static-tripod",
	"dolly-zoom",
	"crane-shot",
	"overhead-drone",
	"fpv-drone",
	"macro-probe",
	"underwater-housing",
}

var cameras = map[string]Camera{
	"handheld": {
		ID:       "handheld",
		Name:     "Handheld",
		Category: CategoryGround,
		Phrase:   "handheld camera, raw documentary energy",
	},
	"steadicam": {
		ID:       "steadicam",
		Name:     "Steadicam",
		Category: CategoryGround,
		Phrase:   "smooth steadicam tracking shot",
	},
	"static-tripod": {
		ID:       "static-tripod",
		Name:     "Static Tripod",
		Category: CategoryGround,
		Phrase:   "locked-off tripod shot, deliberate framing",
	},
	"dolly-zoom": {
		ID:       "dolly-zoom",
		Name:     "Dolly Zoom",
		Category: CategoryGround,
		Phrase:   "vertigo dolly zoom, warping perspective",
	},
	"crane-shot": {
		ID:       "crane-shot",
		Name:     "Crane Shot",
		Category: CategoryAerial,
		Phrase:   "sweeping crane shot rising above the scene",
	},
	"overhead-drone": {
		ID:       "overhead-drone",
		Name:     "Overhead Drone Shot",
		Category: CategoryAerial,
		Phrase:   "overhead drone shot, top-down aerial perspective",
	},
	"fpv-drone": {
		ID:       "fpv-drone",
		Name:     "FPV Drone",
		Category: CategoryAerial,
		Phrase:   "fast FPV drone fly-through",
	},
	"macro-probe": {
		ID:       "macro-probe",
		Name:     "Macro Probe Lens",
		Category: CategoryMacro,
		Phrase:   "macro probe lens, extreme close perspective",
	},
	"underwater-housing": {
		ID:       "underwater-housing",
		Name:     "Underwater Housing",
		Category: CategoryUnderwater,
		Phrase:   "underwater camera housing, submerged perspective",
	},
}

// CameraByID looks up a camera by its identifier.
func CameraByID(id string) (Camera, bool) {
	c, ok := cameras[id]
	return c, ok
}

// Cameras returns the selectable cameras in display order.
func Cameras() []Camera {
	out := make([]Camera, 0, len(cameraOrder))
	for _, id := range cameraOrder {
		if c, ok := cameras[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// CameraPhrase returns the prompt phrase for a camera, or "" when unknown.
func CameraPhrase(id string) string {
	if c, ok := cameras[id]; ok {
		return c.Phrase
	}
	return ""
}

// CameraCategory resolves the conflict category for a camera selection.
// Unknown cameras resolve to "", which the rule tables treat as
// unrestricted.
func CameraCategory(id string) string {
	if c, ok := cameras[id]; ok {
		return c.Category
	}
	return ""
}
