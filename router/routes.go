package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/mstgnz/netopia/handler"
	"github.com/mstgnz/netopia/netopia"
	v1 "github.com/mstgnz/netopia/router/v1"
)

// Routes registers the service routes on the given router
func Routes(r chi.Router, cfg netopia.Config) {
	r.Get("/health", handler.Health)

	r.Route("/v1", func(r chi.Router) {
		v1.Routes(r, cfg)
	})
}
