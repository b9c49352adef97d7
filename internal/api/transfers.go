package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/1ort/lava-go/internal/types"
)

// CreateTransfer moves funds between two Lava accounts.
func CreateTransfer(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateTransferRequest) (*types.CreateTransferResponse, error) {
	if err := types.Validate(req); err != nil {
		return nil, err
	}
	var resp types.CreateTransferResponse
	if err := Call(ctx, httpClient, baseURL, http.MethodPost, "/transfer/create", req.Values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTransfer retrieves the current state of a transfer by ID.
func GetTransfer(ctx context.Context, httpClient *http.Client, baseURL, id string) (*types.Transfer, error) {
	if err := types.ValidateVar("id", id, "required"); err != nil {
		return nil, err
	}
	var tr types.Transfer
	if err := Call(ctx, httpClient, baseURL, http.MethodPost, "/transfer/info", url.Values{"id": {id}}, &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}
