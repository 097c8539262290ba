package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bakehouse/internal/pkg/config"
	"bakehouse/internal/pkg/errs"
)

var ErrGatewayUnavailable = errs.New("payment gateway unavailable")

// CheckoutParams opens a hosted checkout session for a fixed-price order.
// OrderID travels as the client reference and comes back on webhook events.
type CheckoutParams struct {
	OrderID       string
	OrderNumber   string
	AmountCents   int64
	Currency      string
	CustomerEmail string
	Description   string
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// InvoiceParams creates a deposit or balance invoice against an order.
type InvoiceParams struct {
	OrderID       string
	OrderNumber   string
	AmountCents   int64
	Currency      string
	CustomerEmail string
	Purpose       string // PurposeDeposit or PurposeBalance
	Description   string
}

type Invoice struct {
	ID        string `json:"id"`
	HostedURL string `json:"hosted_url"`
}

//go:generate mockgen -source=gateway.go -destination=../../../tests/mock/payment/gateway_mock.go -package=mock_payment

// Gateway is the system of record for money movement. The core never holds
// card data; it creates sessions/invoices and reacts to webhook events.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (CheckoutSession, error)
	CreateInvoice(ctx context.Context, p InvoiceParams) (Invoice, error)
}

type httpGateway struct {
	baseURL    string
	apiKey     string
	successURL string
	cancelURL  string
	client     *http.Client
}

func NewGateway(cfg config.PaymentConfig) Gateway {
	return &httpGateway{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *httpGateway) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (CheckoutSession, error) {
	body := map[string]any{
		"client_reference_id": p.OrderID,
		"amount":              p.AmountCents,
		"currency":            p.Currency,
		"customer_email":      p.CustomerEmail,
		"description":         p.Description,
		"metadata":            map[string]string{"order_number": p.OrderNumber},
		"success_url":         g.successURL,
		"cancel_url":          g.cancelURL,
	}

	var session CheckoutSession
	if err := g.post(ctx, "/v1/checkout/sessions", body, &session); err != nil {
		return CheckoutSession{}, err
	}
	return session, nil
}

func (g *httpGateway) CreateInvoice(ctx context.Context, p InvoiceParams) (Invoice, error) {
	body := map[string]any{
		"client_reference_id": p.OrderID,
		"amount":              p.AmountCents,
		"currency":            p.Currency,
		"customer_email":      p.CustomerEmail,
		"purpose":             p.Purpose,
		"description":         p.Description,
		"metadata":            map[string]string{"order_number": p.OrderNumber},
	}

	var invoice Invoice
	if err := g.post(ctx, "/v1/invoices", body, &invoice); err != nil {
		return Invoice{}, err
	}
	return invoice, nil
}

func (g *httpGateway) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "encode gateway request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "build gateway request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return errs.Mark(err, ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return errs.Mark(errs.Newf("gateway returned %d", resp.StatusCode), ErrGatewayUnavailable)
	}
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errs.Newf("gateway rejected %s: %d %s", path, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, fmt.Sprintf("decode gateway response for %s", path))
	}
	return nil
}
