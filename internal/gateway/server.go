package gateway

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// buildRouter constructs the chi mux with all routes wired.
func (g *Gateway) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Public — no auth required.
	r.Get("/health", g.handleHealth())

	// Operational endpoints — auth required when configured.
	mount := func(r chi.Router) {
		r.Get("/status", g.handleStatus())
		if g.registry != nil {
			r.Handle("/metrics", promhttp.HandlerFor(g.registry, promhttp.HandlerOpts{}))
		}
	}
	if g.config.Auth.IsConfigured() {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware(g.config.Auth))
			mount(r)
		})
	} else {
		mount(r)
	}

	return r
}
