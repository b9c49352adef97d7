package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/1ort/lava-go/internal/types"
)

// CreateInvoice issues a new payment request.
func CreateInvoice(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateInvoiceRequest) (*types.CreateInvoiceResponse, error) {
	if err := types.Validate(req); err != nil {
		return nil, err
	}
	var resp types.CreateInvoiceResponse
	if err := Call(ctx, httpClient, baseURL, http.MethodPost, "/invoice/create", req.Values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetInvoice retrieves an invoice by ID or by the caller's order ID and
// unwraps the {status, invoice} envelope.
func GetInvoice(ctx context.Context, httpClient *http.Client, baseURL string, req types.GetInvoiceRequest) (*types.Invoice, error) {
	if err := types.Validate(req); err != nil {
		return nil, err
	}
	var resp types.GetInvoiceResponse
	if err := Call(ctx, httpClient, baseURL, http.MethodPost, "/invoice/info", req.Values(), &resp); err != nil {
		return nil, err
	}
	return &resp.Invoice, nil
}

// SetInvoiceWebhook registers the URL that receives invoice status updates.
// The response body carries nothing beyond the status marker.
func SetInvoiceWebhook(ctx context.Context, httpClient *http.Client, baseURL, hookURL string) error {
	if err := types.ValidateVar("url", hookURL, "required,http_url"); err != nil {
		return err
	}
	return Call(ctx, httpClient, baseURL, http.MethodPost, "/invoice/set-webhook", url.Values{"url": {hookURL}}, nil)
}

// GenerateSecretKeys issues a fresh pair of webhook signing keys.
func GenerateSecretKeys(ctx context.Context, httpClient *http.Client, baseURL string) (*types.SecretKeys, error) {
	var keys types.SecretKeys
	if err := Call(ctx, httpClient, baseURL, http.MethodGet, "/invoice/generate-secret-key", nil, &keys); err != nil {
		return nil, err
	}
	return &keys, nil
}
