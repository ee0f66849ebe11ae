package handlers

import (
	"net/http"

	"github.com/ssfi-digital/federation-portal/services"
)

type PaymentHandler struct {
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateOrder mints an order the client hands to the checkout widget. The
// widget itself and payment capture live outside this service.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input struct {
		AmountMinorUnits int64 `json:"amount_minor_units"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	order, err := h.paymentService.CreateOrder(r.Context(), input.AmountMinorUnits)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"order": order}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
