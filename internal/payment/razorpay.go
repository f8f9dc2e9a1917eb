// Package payment integrates the external checkout gateway: order
// creation, callback signature verification, and the client-side flow
// state machine that guards the premium unlock.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Premium plan pricing, fixed.
const (
	// PremiumAmount is the order amount in minor currency units (paise).
	PremiumAmount = 49900
	// PremiumCurrency is the fixed order currency.
	PremiumCurrency = "INR"
)

// DefaultBaseURL is the production gateway API endpoint.
const DefaultBaseURL = "https://api.razorpay.com"

// Order is the gateway's order record, handed to the checkout widget.
type Order struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// Gateway is a thin client for the payment provider's REST API.
type Gateway struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// NewGateway creates a gateway client. An empty baseURL selects the
// production endpoint; tests point it at a local server.
func NewGateway(keyID, keySecret, baseURL string) (*Gateway, error) {
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("gateway credentials are required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Gateway{
		keyID:      keyID,
		keySecret:  keySecret,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// CreateOrder places a premium-plan order with the gateway.
func (g *Gateway) CreateOrder(ctx context.Context) (*Order, error) {
	payload := map[string]any{
		"amount":   PremiumAmount,
		"currency": PremiumCurrency,
		"receipt":  fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("gateway rejected order: status %d: %s", resp.StatusCode, data)
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("gateway returned order without id")
	}
	return &order, nil
}

// KeySecret exposes the signing secret for callback verification.
func (g *Gateway) KeySecret() string {
	return g.keySecret
}
