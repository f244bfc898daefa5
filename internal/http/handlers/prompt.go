package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scenedirector/internal/domain"
	"scenedirector/internal/middleware"
	"scenedirector/internal/promptgen"
)

type promptResponse struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
	Style  string `json:"style"`
	Locale string `json:"locale"`
}

// CompilePrompt renders the scene for its selected target model, or for
// the ?model= override when given. An unsupported model fails the call;
// there is no silent fallback.
func (a *App) CompilePrompt(w http.ResponseWriter, r *http.Request) {
	sess, err := a.Sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "unknown scene")
		return
	}

	modelID := sess.State.Model
	if override := r.URL.Query().Get("model"); override != "" {
		modelID = override
	}

	prompt, err := promptgen.CompileFor(sess.State, modelID)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedModel) {
			a.error(w, http.StatusBadRequest, "unsupported_model", "unknown target model")
			return
		}
		a.Log.Error().Err(err).Str("scene", sess.ID).Msg("compile failed")
		a.error(w, http.StatusInternalServerError, "internal", "compile failed")
		return
	}

	model := promptgen.Model(modelID)
	a.json(w, http.StatusOK, promptResponse{
		Prompt: prompt,
		Model:  modelID,
		Style:  string(model.PromptStyle()),
		Locale: middleware.LocaleFromContext(r.Context()),
	})
}
