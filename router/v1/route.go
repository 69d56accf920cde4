package v1

import (
	"github.com/go-chi/chi/v5"
	"github.com/mstgnz/netopia/handler"
	"github.com/mstgnz/netopia/netopia"
)

// Routes registers all v1 API routes
func Routes(r chi.Router, cfg netopia.Config) {
	paymentHandler := handler.NewPaymentHandler(cfg)

	r.Route("/payment", func(r chi.Router) {
		r.Post("/start", paymentHandler.StartPayment)
	})
}
