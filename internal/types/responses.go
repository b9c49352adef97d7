package types

import "github.com/shopspring/decimal"

// ------------------------------
// Response Types
// ------------------------------

// PingResponse mirrors /test/ping
type PingResponse struct {
	Status bool `json:"status"`
}

// CreateWithdrawalResponse mirrors /withdraw/create
type CreateWithdrawalResponse struct {
	ID         string          `json:"id"`
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
}

// CreateTransferResponse mirrors /transfer/create
type CreateTransferResponse struct {
	ID         string          `json:"id"`
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
}

// CreateInvoiceResponse mirrors /invoice/create
type CreateInvoiceResponse struct {
	Status       string          `json:"status"`
	ID           string          `json:"id"`
	URL          string          `json:"url"`
	Expire       Timestamp       `json:"expire"`
	Sum          decimal.Decimal `json:"sum"`
	SuccessURL   string          `json:"success_url"`
	FailURL      string          `json:"fail_url"`
	HookURL      string          `json:"hook_url"`
	CustomFields string          `json:"custom_fields"`
	MerchantName string          `json:"merchant_name"`
	MerchantID   string          `json:"merchant_id"`
}

// GetInvoiceResponse wraps the /invoice/info envelope
type GetInvoiceResponse struct {
	Status  string  `json:"status"`
	Invoice Invoice `json:"invoice"`
}

// SecretKeys mirrors /invoice/generate-secret-key
type SecretKeys struct {
	Status     string `json:"status"`
	SecretKey  string `json:"secret_key"`
	SecretKey2 string `json:"secret_key_2"`
}
