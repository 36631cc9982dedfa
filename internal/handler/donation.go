package handler

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pixiplay/platform/internal/domain"
	"github.com/pixiplay/platform/internal/provider"
)

const (
	maxDonationAmount = 10000
	defaultCurrency   = "CAD"
)

// DonationProvider is the payment surface the donation endpoints need.
type DonationProvider interface {
	CreateOrder(ctx context.Context, amount, currency string) (*provider.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (*provider.CaptureResult, error)
}

// DonationHandler serves the donation order endpoints.
type DonationHandler struct {
	payments DonationProvider
}

// NewDonationHandler creates a new DonationHandler.
func NewDonationHandler(payments DonationProvider) *DonationHandler {
	return &DonationHandler{payments: payments}
}

type createOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CreateOrder handles POST /api/donations/orders.
func (h *DonationHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	if req.Amount <= 0 || req.Amount > maxDonationAmount || math.IsNaN(req.Amount) {
		RespondError(w, domain.ErrValidation("amount must be between 0 and 10000"))
		return
	}
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	amount := strconv.FormatFloat(req.Amount, 'f', 2, 64)
	order, err := h.payments.CreateOrder(r.Context(), amount, currency)
	if err != nil {
		RespondError(w, domain.ErrInternal("create donation order", err))
		return
	}

	RespondJSON(w, http.StatusCreated, order)
}

// CaptureOrder handles POST /api/donations/orders/{orderID}/capture.
func (h *DonationHandler) CaptureOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		RespondError(w, domain.ErrValidation("order id is required"))
		return
	}

	result, err := h.payments.CaptureOrder(r.Context(), orderID)
	if err != nil {
		RespondError(w, domain.ErrInternal("capture donation order", err))
		return
	}

	RespondJSON(w, http.StatusOK, result)
}
