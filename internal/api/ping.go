package api

import (
	"context"
	"net/http"

	"github.com/1ort/lava-go/internal/types"
)

// Ping checks connectivity and credential validity.
func Ping(ctx context.Context, httpClient *http.Client, baseURL string) (*types.PingResponse, error) {
	var resp types.PingResponse
	if err := Call(ctx, httpClient, baseURL, http.MethodGet, "/test/ping", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
