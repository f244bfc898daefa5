package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scenedirector/internal/conflict"
	"scenedirector/internal/domain"
	"scenedirector/internal/promptgen"
	"scenedirector/internal/session"
)

type sceneResponse struct {
	Session   session.Session `json:"session"`
	Conflicts conflict.Result `json:"conflicts"`
}

func (a *App) scene(w http.ResponseWriter, sess session.Session, code int) {
	a.json(w, code, sceneResponse{
		Session:   sess,
		Conflicts: conflict.Compute(sess.State),
	})
}

// CreateScene starts a new editing session with the documented defaults.
func (a *App) CreateScene(w http.ResponseWriter, r *http.Request) {
	sess := a.Sessions.Create()
	a.scene(w, sess, http.StatusCreated)
}

// GetScene returns the session's state together with the current
// blocked-value view for UI disabling.
func (a *App) GetScene(w http.ResponseWriter, r *http.Request) {
	sess, err := a.Sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "unknown scene")
		return
	}
	a.scene(w, sess, http.StatusOK)
}

// sceneUpdateRequest carries a partial update; nil fields stay untouched.
type sceneUpdateRequest struct {
	Subject        *string `json:"subject"`
	Location       *string `json:"location"`
	NegativePrompt *string `json:"negative_prompt"`

	Camera       *string `json:"camera"`
	Director     *string `json:"director"`
	Lens         *string `json:"lens"`
	ShotType     *string `json:"shot_type"`
	DepthOfField *string `json:"depth_of_field"`
	AspectRatio  *string `json:"aspect_ratio"`
	Atmosphere   *string `json:"atmosphere"`
	VisualPreset *string `json:"visual_preset"`
	Lighting     *string `json:"lighting"`
	ColorPalette *string `json:"color_palette"`
	Model        *string `json:"model"`

	CustomCamera *string   `json:"custom_camera"`
	CustomLens   *string   `json:"custom_lens"`
	CustomShot   *string   `json:"custom_shot"`
	CustomColors *[]string `json:"custom_colors"`

	Creativity *int `json:"creativity"`
	Variation  *int `json:"variation"`
	Uniqueness *int `json:"uniqueness"`

	CreativeControlsEnabled *bool `json:"creative_controls_enabled"`
}

// UpdateScene applies a partial update. Camera and director changes run
// through the constraint resolver so conflicting selections are cleared
// atomically with the change; every field respects the settings lock.
func (a *App) UpdateScene(w http.ResponseWriter, r *http.Request) {
	var req sceneUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Model != nil && !promptgen.IsSupported(promptgen.Model(*req.Model)) {
		a.error(w, http.StatusBadRequest, "unsupported_model", "unknown target model")
		return
	}

	sess, err := a.Sessions.Mutate(chi.URLParam(r, "id"), func(state domain.SceneState, locked bool) domain.SceneState {
		return applyUpdate(state, req, locked)
	})
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "unknown scene")
		return
	}
	a.scene(w, sess, http.StatusOK)
}

func applyUpdate(state domain.SceneState, req sceneUpdateRequest, locked bool) domain.SceneState {
	if locked {
		return state
	}

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&state.Subject, req.Subject)
	setString(&state.Location, req.Location)
	setString(&state.NegativePrompt, req.NegativePrompt)
	setString(&state.Lens, req.Lens)
	setString(&state.ShotType, req.ShotType)
	setString(&state.DepthOfField, req.DepthOfField)
	setString(&state.AspectRatio, req.AspectRatio)
	setString(&state.Atmosphere, req.Atmosphere)
	setString(&state.VisualPreset, req.VisualPreset)
	setString(&state.Lighting, req.Lighting)
	setString(&state.ColorPalette, req.ColorPalette)
	setString(&state.Model, req.Model)
	setString(&state.CustomCamera, req.CustomCamera)
	setString(&state.CustomLens, req.CustomLens)
	setString(&state.CustomShot, req.CustomShot)

	if req.CustomColors != nil {
		var colors [6]string
		for i, hex := range *req.CustomColors {
			if i >= len(colors) {
				break
			}
			colors[i] = hex
		}
		state.CustomColors = colors
	}

	if req.Creativity != nil {
		state.Creativity = domain.ClampSlider(*req.Creativity)
	}
	if req.Variation != nil {
		state.Variation = domain.ClampSlider(*req.Variation)
	}
	if req.Uniqueness != nil {
		state.Uniqueness = domain.ClampSlider(*req.Uniqueness)
	}
	if req.CreativeControlsEnabled != nil {
		state.CreativeControlsEnabled = *req.CreativeControlsEnabled
	}

	if req.Camera != nil {
		state.Camera = *req.Camera
	}
	if req.Director != nil {
		state.Director = *req.Director
	}

	// Sanitize on every update, not just camera or director changes: a
	// direct write of a dependent field can introduce a blocked value too.
	return conflict.Sanitize(state)
}

type characterRequest struct {
	Content string `json:"content"`
}

// AddCharacter appends a character entry to the scene's cast.
func (a *App) AddCharacter(w http.ResponseWriter, r *http.Request) {
	var req characterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	sess, err := a.Sessions.Mutate(chi.URLParam(r, "id"), func(state domain.SceneState, locked bool) domain.SceneState {
		if locked {
			return state
		}
		return state.AddCharacter(req.Content)
	})
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "unknown scene")
		return
	}
	a.scene(w, sess, http.StatusOK)
}

// RemoveCharacter drops a character entry by its opaque ID.
func (a *App) RemoveCharacter(w http.ResponseWriter, r *http.Request) {
	charID := chi.URLParam(r, "charID")
	sess, err := a.Sessions.Mutate(chi.URLParam(r, "id"), func(state domain.SceneState, locked bool) domain.SceneState {
		if locked {
			return state
		}
		return state.RemoveCharacter(charID)
	})
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "unknown scene")
		return
	}
	a.scene(w, sess, http.StatusOK)
}

// LockScene engages the settings lock; all mutations become no-ops.
func (a *App) LockScene(w http.ResponseWriter, r *http.Request) {
	a.setLocked(w, r, true)
}

// UnlockScene releases the settings lock.
func (a *App) UnlockScene(w http.ResponseWriter, r *http.Request) {
	a.setLocked(w, r, false)
}

func (a *App) setLocked(w http.ResponseWriter, r *http.Request, locked bool) {
	sess, err := a.Sessions.SetLocked(chi.URLParam(r, "id"), locked)
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "unknown scene")
		return
	}
	a.scene(w, sess, http.StatusOK)
}

// ResetScene restores the documented defaults. A locked scene is left
// unchanged; the response reports the (unchanged) state rather than an
// error.
func (a *App) ResetScene(w http.ResponseWriter, r *http.Request) {
	sess, err := a.Sessions.Mutate(chi.URLParam(r, "id"), conflict.ApplyReset)
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "unknown scene")
		return
	}
	a.scene(w, sess, http.StatusOK)
}
