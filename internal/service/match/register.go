package match

import (
	"github.com/go-chi/chi/v5"

	"github.com/pokojowo/match-service/internal/app"
)

// Registrar ties the match service into the HTTP router
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the match service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register mounts the match endpoints on the router
func (r *Registrar) Register(router chi.Router) {
	service := NewMatchService(r.appCtx)

	router.Route("/v1", func(v1 chi.Router) {
		v1.Get("/users/{userID}/matches", service.handleGetMatches)
		v1.Get("/users/{userID}/matches/count", service.handleCountMatches)
		v1.Get("/users/{userID}/matches/{candidateID}", service.handleGetPairMatch)
		v1.Post("/weights/validate", service.handleValidateWeights)
	})
}
