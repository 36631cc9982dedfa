package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const sandboxBaseURL = "https://api-m.sandbox.paypal.com"

// PayPalProvider wraps the PayPal Orders v2 API used by the donation flow.
type PayPalProvider struct {
	clientID string
	secret   string
	baseURL  string
	client   *http.Client
}

// NewPayPalProvider creates a PayPal provider. An empty baseURL targets the
// sandbox environment.
func NewPayPalProvider(clientID, secret, baseURL string) *PayPalProvider {
	if baseURL == "" {
		baseURL = sandboxBaseURL
	}
	return &PayPalProvider{
		clientID: clientID,
		secret:   secret,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Order is a created PayPal order awaiting approval and capture.
type Order struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CaptureResult carries the completed transaction id and the payer's
// display name for the client-side receipt.
type CaptureResult struct {
	TransactionID string `json:"transactionId"`
	PayerName     string `json:"payerName"`
	Status        string `json:"status"`
}

// CreateOrder creates a capture-intent order for the given amount.
func (p *PayPalProvider) CreateOrder(ctx context.Context, amount, currency string) (*Order, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{"amount": map[string]string{"currency_code": currency, "value": amount}},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v2/checkout/orders", strings.NewReader(string(payload)))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paypal api call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("paypal error (status %d): %s", resp.StatusCode, string(raw))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	return &order, nil
}

// CaptureOrder captures an approved order, returning the transaction id
// (the order id, or the first capture id when the order id is absent) and
// the payer's given name.
func (p *PayPalProvider) CaptureOrder(ctx context.Context, orderID string) (*CaptureResult, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v2/checkout/orders/"+url.PathEscape(orderID)+"/capture", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paypal api call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("paypal error (status %d): %s", resp.StatusCode, string(raw))
	}

	var capture struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Payer  struct {
			Name struct {
				GivenName string `json:"given_name"`
			} `json:"name"`
		} `json:"payer"`
		PurchaseUnits []struct {
			Payments struct {
				Captures []struct {
					ID string `json:"id"`
				} `json:"captures"`
			} `json:"payments"`
		} `json:"purchase_units"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&capture); err != nil {
		return nil, fmt.Errorf("decode capture response: %w", err)
	}

	txID := capture.ID
	if txID == "" && len(capture.PurchaseUnits) > 0 && len(capture.PurchaseUnits[0].Payments.Captures) > 0 {
		txID = capture.PurchaseUnits[0].Payments.Captures[0].ID
	}
	payer := capture.Payer.Name.GivenName
	if payer == "" {
		payer = "Donor"
	}

	return &CaptureResult{TransactionID: txID, PayerName: payer, Status: capture.Status}, nil
}

// accessToken fetches a client-credentials OAuth token.
func (p *PayPalProvider) accessToken(ctx context.Context) (string, error) {
	if p.clientID == "" || p.secret == "" {
		return "", fmt.Errorf("paypal credentials not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v1/oauth2/token", strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(p.clientID, p.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("paypal token call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("paypal token error (status %d): %s", resp.StatusCode, string(raw))
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("empty paypal access token")
	}
	return tok.AccessToken, nil
}
