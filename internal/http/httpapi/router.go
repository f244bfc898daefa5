package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"scenedirector/internal/http/handlers"
	"scenedirector/internal/middleware"
)

// Options configures the router's cross-cutting middleware.
type Options struct {
	Logger           zerolog.Logger
	AllowedOrigins   []string
	CompileRateLimit int
}

func NewRouter(app *handlers.App, opts Options) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.CORS(opts.AllowedOrigins))
	r.Use(middleware.I18N)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/catalog", app.Catalog)

	r.Route("/v1/scenes", func(r chi.Router) {
		r.Post("/", app.CreateScene)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.GetScene)
			r.Patch("/", app.UpdateScene)
			r.Post("/characters", app.AddCharacter)
			r.Delete("/characters/{charID}", app.RemoveCharacter)
			r.Post("/lock", app.LockScene)
			r.Post("/unlock", app.UnlockScene)
			r.Post("/reset", app.ResetScene)
			r.With(middleware.RateLimit(opts.CompileRateLimit, time.Minute)).
				Get("/prompt", app.CompilePrompt)
		})
	})

	return r
}
