package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mstgnz/netopia/infra/response"
	"github.com/mstgnz/netopia/netopia"
)

// PaymentHandler handles payment related HTTP requests
type PaymentHandler struct {
	config netopia.Config
}

// NewPaymentHandler creates a new payment handler. A fresh gateway client is
// built per request, so concurrent payment attempts never share slots.
func NewPaymentHandler(config netopia.Config) *PaymentHandler {
	return &PaymentHandler{config: config}
}

// startPaymentRequest is the wire shape accepted by StartPayment. Sections
// are kept raw here; shape validation belongs to the gateway client. The
// optional products section replaces the order's product list after the
// order is set.
type startPaymentRequest struct {
	Payment     json.RawMessage `json:"payment"`
	BrowserInfo json.RawMessage `json:"browserInfo"`
	Order       json.RawMessage `json:"order"`
	Products    json.RawMessage `json:"products"`
}

// StartPayment handles payment start requests
func (h *PaymentHandler) StartPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var req startPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	client, err := netopia.New(h.config)
	if err != nil {
		// Construction only fails on missing credentials, which is a
		// deployment problem rather than a caller problem
		response.Error(w, http.StatusInternalServerError, "Gateway not configured", err)
		return
	}

	if len(req.Payment) > 0 {
		if err := client.SetPaymentData(req.Payment); err != nil {
			response.Error(w, http.StatusBadRequest, "Validation error", err)
			return
		}
	}
	if len(req.BrowserInfo) > 0 {
		if err := client.SetBrowserInfo(req.BrowserInfo); err != nil {
			response.Error(w, http.StatusBadRequest, "Validation error", err)
			return
		}
	}
	if len(req.Order) > 0 {
		if err := client.SetOrderData(req.Order); err != nil {
			response.Error(w, http.StatusBadRequest, "Validation error", err)
			return
		}
	}
	if len(req.Products) > 0 {
		if err := client.SetProductsData(req.Products); err != nil {
			response.Error(w, http.StatusBadRequest, "Validation error", err)
			return
		}
	}

	result, err := client.StartPayment(ctx)
	if err != nil {
		switch {
		case netopia.IsKind(err, netopia.KindMissingField):
			response.Error(w, http.StatusBadRequest, "Missing payment data", err)
		case netopia.IsKind(err, netopia.KindFailedPaymentStart):
			response.Error(w, http.StatusBadGateway, "Payment failed", err)
		default:
			response.Error(w, http.StatusInternalServerError, "Payment failed", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment started", result)
}
