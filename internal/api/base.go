package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/1ort/lava-go/internal/types"
)

// Call is the single dispatch routine shared by every endpoint. It builds the
// request (form body for POST, empty body for GET), sends it, reads the
// response and classifies the outcome:
//
//   - transport or body-read failure        → *types.TransportError
//   - body that is not valid JSON           → *types.TransportError
//   - JSON object with "status": "error"    → *types.APIError
//   - anything else                         → decoded into out
//
// The Authorization header is attached by the client's transport wrapper,
// not here. One call issues at most one HTTP request; there is no retry.
func Call(ctx context.Context, httpClient *http.Client, baseURL, method, path string, form url.Values, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body io.Reader
	if method == http.MethodPost {
		if form == nil {
			form = url.Values{}
		}
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, body)
	if err != nil {
		return &types.TransportError{Op: path, Err: err}
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		observe(path, outcomeTransportError, start)
		return &types.TransportError{Op: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		observe(path, outcomeTransportError, start)
		return &types.TransportError{Op: path, Err: fmt.Errorf("read body: %w", err)}
	}

	if !json.Valid(raw) {
		observe(path, outcomeTransportError, start)
		return &types.TransportError{Op: path, Err: fmt.Errorf("non-JSON response (HTTP %d)", resp.StatusCode)}
	}

	if apiErr := decodeAPIError(raw); apiErr != nil {
		observe(path, outcomeAPIError, start)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			observe(path, outcomeTransportError, start)
			return &types.TransportError{Op: path, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	observe(path, outcomeSuccess, start)
	return nil
}

// decodeAPIError reports a business failure if the body is a JSON object
// whose status field is the string "error". Arrays, scalars and objects with
// non-string status (ping answers {"status": true}) are never error
// envelopes, so a failed probe decode simply means "not an error".
func decodeAPIError(raw []byte) *types.APIError {
	var env struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil
	}
	if env.Status != types.StatusError {
		return nil
	}
	return &types.APIError{Code: env.Code, Message: env.Message}
}
