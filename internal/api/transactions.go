package api

import (
	"context"
	"net/http"

	"github.com/1ort/lava-go/internal/types"
)

// ListTransactions returns the account history matching the given filters.
func ListTransactions(ctx context.Context, httpClient *http.Client, baseURL string, req types.ListTransactionsRequest) ([]types.Transaction, error) {
	if err := types.Validate(req); err != nil {
		return nil, err
	}
	var txs []types.Transaction
	if err := Call(ctx, httpClient, baseURL, http.MethodPost, "/transactions/list", req.Values(), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
