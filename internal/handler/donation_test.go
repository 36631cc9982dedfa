package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pixiplay/platform/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayments struct {
	lastAmount   string
	lastCurrency string
	capturedID   string
}

func (f *fakePayments) CreateOrder(ctx context.Context, amount, currency string) (*provider.Order, error) {
	f.lastAmount = amount
	f.lastCurrency = currency
	return &provider.Order{ID: "ORDER-1", Status: "CREATED"}, nil
}

func (f *fakePayments) CaptureOrder(ctx context.Context, orderID string) (*provider.CaptureResult, error) {
	f.capturedID = orderID
	return &provider.CaptureResult{TransactionID: "TX-1", PayerName: "Pat", Status: "COMPLETED"}, nil
}

func donationRouter(payments DonationProvider) chi.Router {
	h := NewDonationHandler(payments)
	r := chi.NewRouter()
	r.Post("/api/donations/orders", h.CreateOrder)
	r.Post("/api/donations/orders/{orderID}/capture", h.CaptureOrder)
	return r
}

func TestCreateOrder_Success(t *testing.T) {
	payments := &fakePayments{}
	r := donationRouter(payments)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/donations/orders",
		strings.NewReader(`{"amount": 25.5}`))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "25.50", payments.lastAmount)
	assert.Equal(t, "CAD", payments.lastCurrency, "default currency")

	var order provider.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "ORDER-1", order.ID)
}

func TestCreateOrder_ExplicitCurrency(t *testing.T) {
	payments := &fakePayments{}
	r := donationRouter(payments)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/donations/orders",
		strings.NewReader(`{"amount": 10, "currency": "USD"}`))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "USD", payments.lastCurrency)
}

func TestCreateOrder_InvalidAmounts(t *testing.T) {
	for _, body := range []string{
		`{"amount": 0}`,
		`{"amount": -5}`,
		`{"amount": 10001}`,
		`{}`,
		`not json`,
	} {
		r := donationRouter(&fakePayments{})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/donations/orders", strings.NewReader(body))
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestCaptureOrder_Success(t *testing.T) {
	payments := &fakePayments{}
	r := donationRouter(payments)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/donations/orders/ORDER-1/capture", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ORDER-1", payments.capturedID)

	var result provider.CaptureResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "TX-1", result.TransactionID)
	assert.Equal(t, "Pat", result.PayerName)
}
