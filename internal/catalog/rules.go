package catalog

// CategoryRule lists the selections a camera category is incompatible
// with. A category absent from the table blocks nothing.
type CategoryRule struct {
	BlockedAtmospheres []string
	BlockedPresets     []string
	BlockedDOF         []string
}

var categoryRules = map[string]CategoryRule{
	CategoryAerial: {
		BlockedAtmospheres: []string{"noir", "claustrophobic"},
		BlockedPresets:     []string{"macro-detail", "portrait-studio"},
		BlockedDOF:         []string{"shallow", "macro"},
	},
	CategoryMacro: {
		BlockedAtmospheres: []string{"epic-vista"},
		BlockedPresets:     []string{"sweeping-landscape"},
		BlockedDOF:         []string{"deep"},
	},
	CategoryUnderwater: {
		BlockedAtmospheres: []string{"dusty", "golden-hour"},
		BlockedPresets:     []string{"vintage-film"},
		BlockedDOF:         []string{"tilt-shift"},
	},
}

// cameraAspectRatios restricts which ratios a camera can output. A camera
// absent from the table accepts every ratio.
var cameraAspectRatios = map[string][]string{
	"overhead-drone": {"1:1", "16:9", "21:9"},
	"fpv-drone":      {"16:9", "9:16", "21:9"},
	"macro-probe":    {"1:1", "4:5", "3:4", "4:3"},
}

// RuleForCamera resolves the conflict rule governing a camera selection.
// Unknown cameras and categories without a rule return the zero rule,
// which blocks nothing.
func RuleForCamera(cameraID string) CategoryRule {
	return categoryRules[CameraCategory(cameraID)]
}

// AllowedAspectRatiosFor returns the ratios a camera may use. The second
// return value is false when the camera is unrestricted.
func AllowedAspectRatiosFor(cameraID string) ([]string, bool) {
	ratios, ok := cameraAspectRatios[cameraID]
	if !ok {
		return nil, false
	}
	return append([]string(nil), ratios...), true
}
