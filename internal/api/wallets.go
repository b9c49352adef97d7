package api

import (
	"context"
	"net/http"

	"github.com/1ort/lava-go/internal/types"
)

// ListWallets returns every account balance, unmodified from the wire.
func ListWallets(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Wallet, error) {
	var wallets []types.Wallet
	if err := Call(ctx, httpClient, baseURL, http.MethodGet, "/wallet/list", nil, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}
