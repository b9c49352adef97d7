package lava

import "github.com/1ort/lava-go/internal/types"

// Public type aliases so SDK consumers can import only the lava package.
// Requests
type (
	CreateWithdrawalRequest = types.CreateWithdrawalRequest
	CreateTransferRequest   = types.CreateTransferRequest
	ListTransactionsRequest = types.ListTransactionsRequest
	CreateInvoiceRequest    = types.CreateInvoiceRequest
	GetInvoiceRequest       = types.GetInvoiceRequest

	// Domain entities
	Wallet      = types.Wallet
	Withdrawal  = types.Withdrawal
	Transfer    = types.Transfer
	Transaction = types.Transaction
	Invoice     = types.Invoice
	Timestamp   = types.Timestamp

	// Responses
	PingResponse             = types.PingResponse
	CreateWithdrawalResponse = types.CreateWithdrawalResponse
	CreateTransferResponse   = types.CreateTransferResponse
	CreateInvoiceResponse    = types.CreateInvoiceResponse
	SecretKeys               = types.SecretKeys
)

// Status values the API uses for withdrawals, transfers and invoices.
const (
	StatusCreated = types.StatusCreated
	StatusPending = types.StatusPending
	StatusSuccess = types.StatusSuccess
	StatusError   = types.StatusError
)

// IsFinal reports whether an operation status can no longer change.
func IsFinal(status string) bool { return types.IsFinal(status) }

// Errors re-exported in errors.go
