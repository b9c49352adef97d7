package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// Status values the API uses for withdrawals, transfers and invoices.
// "error" doubles as the failure marker in response envelopes.
const (
	StatusCreated = "created"
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusError   = "error"
)

// IsFinal reports whether an operation status can no longer change.
func IsFinal(status string) bool {
	switch status {
	case StatusCreated, StatusPending:
		return false
	}
	return true
}

// Wallet represents one account balance
type Wallet struct {
	Account  string          `json:"account"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

// Withdrawal represents a payout to an external wallet
type Withdrawal struct {
	ID         string          `json:"id"`
	CreatedAt  Timestamp       `json:"created_at"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
	Status     string          `json:"status"`
	Service    string          `json:"service"`
	Comment    *string         `json:"comment,omitempty"`
	Currency   string          `json:"currency"`
}

// Transfer represents a movement between two Lava accounts
type Transfer struct {
	ID         string          `json:"id"`
	CreatedAt  Timestamp       `json:"created_at"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
	Status     string          `json:"status"`
	Comment    *string         `json:"comment,omitempty"`
	Currency   string          `json:"currency"`
	Type       string          `json:"type"`
	Receiver   string          `json:"receiver"`
}

// Transaction is one row of the account history
type Transaction struct {
	ID           string          `json:"id"`
	CreatedAt    Timestamp       `json:"created_at"`
	CreatedDate  time.Time       `json:"created_date"`
	Amount       decimal.Decimal `json:"amount"`
	Commission   decimal.Decimal `json:"commission"`
	Status       string          `json:"status"`
	TransferType string          `json:"transfer_type"`
	Comment      *string         `json:"comment,omitempty"`
	Method       string          `json:"method"`
	Currency     string          `json:"currency"`
	Account      string          `json:"account"`
	Type         string          `json:"type"`
	Receiver     string          `json:"receiver"`
}

// Invoice represents a payment request issued to a payer
type Invoice struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"order_id"`
	Expire       Timestamp       `json:"expire"`
	Sum          decimal.Decimal `json:"sum"`
	Comment      string          `json:"comment"`
	Status       string          `json:"status"`
	SuccessURL   string          `json:"success_url"`
	FailURL      string          `json:"fail_url"`
	HookURL      string          `json:"hook_url"`
	CustomFields string          `json:"custom_fields"`
}
