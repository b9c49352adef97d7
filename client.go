// Package lava is a Go client for the Lava.ru payment API: wallet balances,
// withdrawals, transfers, transaction history and invoices.
//
// Every endpoint method issues exactly one HTTP request through a single
// shared dispatcher; there is no retry, caching or background work. A Client
// holds no mutable state beyond its immutable credential, so one instance may
// serve any number of concurrent calls.
package lava

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/1ort/lava-go/internal/api"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.lava.ru"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	apiKey  string // opaque token, sent verbatim in the Authorization header
}

// New constructs a Client with the given API key. No network activity happens
// at construction time. Additional options can be provided via functional
// arguments.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("lava: apiKey cannot be empty")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap HTTP transport to automatically add the Authorization header
	c.wrapTransportWithAPIKey()

	return c, nil
}

// NewFromEnv constructs a Client from LAVA_* environment variables.
// Explicit options override the environment.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithBaseURL(cfg.BaseURL),
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithDebugLogging(cfg.Debug),
	}
	return New(cfg.APIKey, append(base, opts...)...)
}

// wrapTransportWithAPIKey wraps the HTTP client's transport to automatically
// add the Authorization header to all requests using the configured API key.
func (c *Client) wrapTransportWithAPIKey() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &apiKeyTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
	}
}

// apiKeyTransport wraps an http.RoundTripper to automatically add the
// Authorization header. The Lava API takes the raw token, no "Bearer" prefix.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", t.apiKey)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Service operations - delegated to internal/api
// --------------------------------------------------------------------

// Ping checks connectivity and credential validity against /test/ping.
func (c *Client) Ping(ctx context.Context) (*PingResponse, error) {
	return api.Ping(ctx, c.http, c.baseURL)
}

// ListWallets returns every account balance.
func (c *Client) ListWallets(ctx context.Context) ([]Wallet, error) {
	return api.ListWallets(ctx, c.http, c.baseURL)
}

// --------------------------------------------------------------------
// Withdrawal operations
// --------------------------------------------------------------------

// CreateWithdrawal requests a payout to an external wallet.
func (c *Client) CreateWithdrawal(ctx context.Context, req CreateWithdrawalRequest) (*CreateWithdrawalResponse, error) {
	return api.CreateWithdrawal(ctx, c.http, c.baseURL, req)
}

// GetWithdrawal retrieves the current state of a withdrawal.
func (c *Client) GetWithdrawal(ctx context.Context, id string) (*Withdrawal, error) {
	return api.GetWithdrawal(ctx, c.http, c.baseURL, id)
}

// --------------------------------------------------------------------
// Transfer operations
// --------------------------------------------------------------------

// CreateTransfer moves funds between two Lava accounts.
func (c *Client) CreateTransfer(ctx context.Context, req CreateTransferRequest) (*CreateTransferResponse, error) {
	return api.CreateTransfer(ctx, c.http, c.baseURL, req)
}

// GetTransfer retrieves the current state of a transfer.
func (c *Client) GetTransfer(ctx context.Context, id string) (*Transfer, error) {
	return api.GetTransfer(ctx, c.http, c.baseURL, id)
}

// ListTransactions returns the account history matching the given filters.
func (c *Client) ListTransactions(ctx context.Context, req ListTransactionsRequest) ([]Transaction, error) {
	return api.ListTransactions(ctx, c.http, c.baseURL, req)
}

// --------------------------------------------------------------------
// Invoice operations
// --------------------------------------------------------------------

// CreateInvoice issues a new payment request.
func (c *Client) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*CreateInvoiceResponse, error) {
	return api.CreateInvoice(ctx, c.http, c.baseURL, req)
}

// GetInvoice retrieves an invoice. Exactly one of req.ID and req.OrderID
// must be set.
func (c *Client) GetInvoice(ctx context.Context, req GetInvoiceRequest) (*Invoice, error) {
	return api.GetInvoice(ctx, c.http, c.baseURL, req)
}

// SetInvoiceWebhook registers the URL that receives invoice status updates.
func (c *Client) SetInvoiceWebhook(ctx context.Context, hookURL string) error {
	return api.SetInvoiceWebhook(ctx, c.http, c.baseURL, hookURL)
}

// GenerateSecretKeys issues a fresh pair of webhook signing keys.
func (c *Client) GenerateSecretKeys(ctx context.Context) (*SecretKeys, error) {
	return api.GenerateSecretKeys(ctx, c.http, c.baseURL)
}
