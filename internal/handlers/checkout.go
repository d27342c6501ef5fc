package handlers

import (
	"net/http"

	"github.com/Kenji-One/tikd/internal/models"
	"github.com/Kenji-One/tikd/internal/services"
)

// CheckoutHandler handles checkout and payment-intent requests
type CheckoutHandler struct {
	checkoutService services.CheckoutServiceInterface
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService services.CheckoutServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CreatePaymentIntent validates the submitted cart against the current
// ticket-type records and returns the provider's client secret
func (h *CheckoutHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.checkoutService.CreatePaymentIntent(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":            true,
		"client_secret": result.ClientSecret,
		"reference":     result.Reference,
		"breakdown":     result.Breakdown,
	})
}
