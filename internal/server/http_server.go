package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pokojowo/match-service/internal/config"
)

// NewRouter builds the top-level router and mounts all provided services.
func NewRouter(registrars ...Registrar) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	for _, reg := range registrars {
		reg.Register(r)
	}
	return r
}

// StartHTTPServer boots the HTTP server with all services registered.
func StartHTTPServer(cfg *config.Config, registrars ...Registrar) error {
	addr := fmt.Sprintf("%s:%s", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(registrars...),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}
