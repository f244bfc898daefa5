package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"scenedirector/internal/session"
)

// App bundles the handlers' shared dependencies.
type App struct {
	Log      zerolog.Logger
	Sessions *session.Store
}

func NewApp(log zerolog.Logger, sessions *session.Store) *App {
	return &App{Log: log, Sessions: sessions}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": errCode, "message": message},
	})
}
