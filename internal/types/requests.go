package types

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// ------------------------------
// Request Types
// ------------------------------
//
// The `form` tag carries the wire name of every field. The API's own
// spellings are part of the contract and are preserved exactly, including
// "substract" on withdraw/invoice creation, "subtract" on transfer creation
// and "exprire" for the invoice TTL.
//
// Optional fields are pointers: nil means the key is omitted from the
// encoded body entirely. A pointer to a zero value is still transmitted —
// the API distinguishes "absent" from "present but zero".

// CreateWithdrawalRequest holds parameters for /withdraw/create
type CreateWithdrawalRequest struct {
	Account   string          `form:"account" validate:"required"`
	Amount    decimal.Decimal `form:"amount" validate:"required,gt=0"`
	Service   string          `form:"service" validate:"required"`
	WalletTo  string          `form:"wallet_to" validate:"required"`
	OrderID   *string         `form:"order_id" validate:"omitempty,min=1"`
	HookURL   *string         `form:"hook_url" validate:"omitempty,http_url"`
	Substract *int            `form:"substract" validate:"omitempty,oneof=0 1"`
	Comment   *string         `form:"comment"`
}

// Values encodes the request as a fresh form body. Caller data is never
// mutated; absent optionals produce no key at all.
func (r CreateWithdrawalRequest) Values() url.Values {
	v := url.Values{}
	v.Set("account", r.Account)
	v.Set("amount", r.Amount.String())
	v.Set("service", r.Service)
	v.Set("wallet_to", r.WalletTo)
	setString(v, "order_id", r.OrderID)
	setString(v, "hook_url", r.HookURL)
	setInt(v, "substract", r.Substract)
	setString(v, "comment", r.Comment)
	return v
}

// CreateTransferRequest holds parameters for /transfer/create
type CreateTransferRequest struct {
	AccountFrom string          `form:"account_from" validate:"required"`
	AccountTo   string          `form:"account_to" validate:"required"`
	Amount      decimal.Decimal `form:"amount" validate:"required,gt=0"`
	Subtract    *int            `form:"subtract" validate:"omitempty,oneof=0 1"`
	Comment     *string         `form:"comment"`
}

func (r CreateTransferRequest) Values() url.Values {
	v := url.Values{}
	v.Set("account_from", r.AccountFrom)
	v.Set("account_to", r.AccountTo)
	v.Set("amount", r.Amount.String())
	setInt(v, "subtract", r.Subtract)
	setString(v, "comment", r.Comment)
	return v
}

// ListTransactionsRequest holds the optional filters for /transactions/list
type ListTransactionsRequest struct {
	TransferType *string `form:"transfer_type" validate:"omitempty,oneof=withdraw transfer"`
	Account      *string `form:"account"`
	PeriodStart  *string `form:"period_start"`
	PeriodEnd    *string `form:"period_end"`
	Offset       *int    `form:"offset" validate:"omitempty,min=0"`
	Limit        *int    `form:"limit" validate:"omitempty,min=1"`
}

func (r ListTransactionsRequest) Values() url.Values {
	v := url.Values{}
	setString(v, "transfer_type", r.TransferType)
	setString(v, "account", r.Account)
	setString(v, "period_start", r.PeriodStart)
	setString(v, "period_end", r.PeriodEnd)
	setInt(v, "offset", r.Offset)
	setInt(v, "limit", r.Limit)
	return v
}

// CreateInvoiceRequest holds parameters for /invoice/create
type CreateInvoiceRequest struct {
	WalletTo     string          `form:"wallet_to" validate:"required"`
	Sum          decimal.Decimal `form:"sum" validate:"required,gt=0"`
	OrderID      *string         `form:"order_id" validate:"omitempty,min=1"`
	HookURL      *string         `form:"hook_url" validate:"omitempty,http_url"`
	SuccessURL   *string         `form:"success_url" validate:"omitempty,http_url"`
	FailURL      *string         `form:"fail_url" validate:"omitempty,http_url"`
	Expire       *int            `form:"exprire" validate:"omitempty,min=1"`
	Substract    *int            `form:"substract" validate:"omitempty,oneof=0 1"`
	CustomFields *string         `form:"custom_fields"`
	Comment      *string         `form:"comment"`
	MerchantID   *string         `form:"merchant_id"`
	MerchantName *string         `form:"merchant_name"`
}

func (r CreateInvoiceRequest) Values() url.Values {
	v := url.Values{}
	v.Set("wallet_to", r.WalletTo)
	v.Set("sum", r.Sum.String())
	setString(v, "order_id", r.OrderID)
	setString(v, "hook_url", r.HookURL)
	setString(v, "success_url", r.SuccessURL)
	setString(v, "fail_url", r.FailURL)
	setInt(v, "exprire", r.Expire)
	setInt(v, "substract", r.Substract)
	setString(v, "custom_fields", r.CustomFields)
	setString(v, "comment", r.Comment)
	setString(v, "merchant_id", r.MerchantID)
	setString(v, "merchant_name", r.MerchantName)
	return v
}

// GetInvoiceRequest identifies an invoice for /invoice/info.
// Exactly one of ID and OrderID must be set.
type GetInvoiceRequest struct {
	ID      string `form:"id" validate:"required_without=OrderID,excluded_with=OrderID"`
	OrderID string `form:"order_id" validate:"required_without=ID,excluded_with=ID"`
}

func (r GetInvoiceRequest) Values() url.Values {
	v := url.Values{}
	if r.ID != "" {
		v.Set("id", r.ID)
	}
	if r.OrderID != "" {
		v.Set("order_id", r.OrderID)
	}
	return v
}

func setString(v url.Values, key string, p *string) {
	if p != nil {
		v.Set(key, *p)
	}
}

func setInt(v url.Values, key string, p *int) {
	if p != nil {
		v.Set(key, strconv.Itoa(*p))
	}
}
