package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/1ort/lava-go/internal/types"
)

// CreateWithdrawal requests a payout to an external wallet.
func CreateWithdrawal(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateWithdrawalRequest) (*types.CreateWithdrawalResponse, error) {
	if err := types.Validate(req); err != nil {
		return nil, err
	}
	var resp types.CreateWithdrawalResponse
	if err := Call(ctx, httpClient, baseURL, http.MethodPost, "/withdraw/create", req.Values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetWithdrawal retrieves the current state of a withdrawal by ID.
func GetWithdrawal(ctx context.Context, httpClient *http.Client, baseURL, id string) (*types.Withdrawal, error) {
	if err := types.ValidateVar("id", id, "required"); err != nil {
		return nil, err
	}
	var w types.Withdrawal
	if err := Call(ctx, httpClient, baseURL, http.MethodPost, "/withdraw/info", url.Values{"id": {id}}, &w); err != nil {
		return nil, err
	}
	return &w, nil
}
