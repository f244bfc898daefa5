// Package conflict keeps a scene's selections mutually compatible. Camera
// categories and director styles each carry block lists; whenever a
// governing selection changes, any held value that the new selection
// blocks is cleared immediately rather than merely disabled in the UI.
package conflict

import (
	"sort"

	"scenedirector/internal/catalog"
	"scenedirector/internal/domain"
)

// Result is the derived view of which values the current camera and
// director selections rule out. AllowedAspectRatios is nil when the
// camera places no restriction.
type Result struct {
	BlockedAtmospheres  []string `json:"blocked_atmospheres"`
	BlockedPresets      []string `json:"blocked_presets"`
	BlockedDOF          []string `json:"blocked_dof"`
	AllowedAspectRatios []string `json:"allowed_aspect_ratios,omitempty"`
}

// Compute recomputes the blocked-value view for the given state. It is a
// pure function: calling it twice on the same state yields identical
// results, and unknown camera or director selections block nothing.
func Compute(state domain.SceneState) Result {
	rule := catalog.RuleForCamera(state.Camera)

	res := Result{
		BlockedAtmospheres: append([]string(nil), rule.BlockedAtmospheres...),
		BlockedPresets:     append([]string(nil), rule.BlockedPresets...),
		BlockedDOF:         append([]string(nil), rule.BlockedDOF...),
	}

	if d, ok := catalog.DirectorByID(state.Director); ok {
		res.BlockedAtmospheres = append(res.BlockedAtmospheres, d.BlockedAtmospheres...)
		res.BlockedPresets = append(res.BlockedPresets, d.BlockedPresets...)
	}

	if ratios, restricted := catalog.AllowedAspectRatiosFor(state.Camera); restricted {
		res.AllowedAspectRatios = ratios
	}

	res.BlockedAtmospheres = dedupeSorted(res.BlockedAtmospheres)
	res.BlockedPresets = dedupeSorted(res.BlockedPresets)
	res.BlockedDOF = dedupeSorted(res.BlockedDOF)
	return res
}

// ApplyCameraChange sets the camera and clears every selection the new
// camera's rules invalidate. A locked scene is returned unchanged.
func ApplyCameraChange(state domain.SceneState, newCamera string, locked bool) domain.SceneState {
	if locked {
		return state
	}
	out := state.Clone()
	out.Camera = newCamera
	return Sanitize(out)
}

// ApplyDirectorChange sets the director style and clears every selection
// the new style invalidates. A locked scene is returned unchanged.
func ApplyDirectorChange(state domain.SceneState, newDirector string, locked bool) domain.SceneState {
	if locked {
		return state
	}
	out := state.Clone()
	out.Director = newDirector
	return Sanitize(out)
}

// ApplyReset restores the documented defaults. A locked scene is returned
// unchanged.
func ApplyReset(state domain.SceneState, locked bool) domain.SceneState {
	if locked {
		return state
	}
	return domain.NewSceneState()
}

// Sanitize enforces the invariant that no held selection appears in its
// blocked set. It must run after any write that can introduce a blocked
// value, whether the governing selection changed or the dependent one did.
func Sanitize(state domain.SceneState) domain.SceneState {
	res := Compute(state)
	if contains(res.BlockedAtmospheres, state.Atmosphere) {
		state.Atmosphere = ""
	}
	if contains(res.BlockedPresets, state.VisualPreset) {
		state.VisualPreset = ""
	}
	if contains(res.BlockedDOF, state.DepthOfField) {
		state.DepthOfField = ""
	}
	if res.AllowedAspectRatios != nil && state.AspectRatio != "" && !contains(res.AllowedAspectRatios, state.AspectRatio) {
		state.AspectRatio = ""
	}
	return state
}

func contains(list []string, v string) bool {
	if v == "" {
		return false
	}
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func dedupeSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
