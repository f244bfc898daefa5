package infra

import (
	"context"
	"net/http"
	"time"
)

// HTTPServer fronts the scene editor API with the timeouts from Config
// applied. All request handling state lives in the router; the server
// itself only owns the listener lifecycle.
type HTTPServer struct {
	srv *http.Server
}

// NewHTTPServer builds the server around the given router.
func NewHTTPServer(cfg *Config, router http.Handler) *HTTPServer {
	return &HTTPServer{
		srv: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadTimeout:       cfg.HTTPReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      cfg.HTTPWriteTimeout,
			IdleTimeout:       cfg.HTTPIdleTimeout,
		},
	}
}

// Start blocks serving requests until Shutdown is called or the listener
// fails. It returns http.ErrServerClosed after a clean shutdown.
func (s *HTTPServer) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests until the context expires.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
