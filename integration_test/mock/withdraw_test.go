package mock

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	lava "github.com/1ort/lava-go"
)

func TestClient_CreateWithdrawal_BodyContents(t *testing.T) {
	t.Parallel()
	var captured url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/withdraw/create" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = r.ParseForm()
		captured = r.PostForm
		_, _ = w.Write([]byte(`{"id":"w-1","status":"created","amount":"100.00","commission":"5.00"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	resp, err := c.CreateWithdrawal(context.Background(), lava.CreateWithdrawalRequest{
		Account:  "R10000001",
		Amount:   decimal.NewFromInt(100),
		Service:  "lava",
		WalletTo: "R10000002",
		OrderID:  strPtr("order-7"),
	})
	if err != nil {
		t.Fatalf("CreateWithdrawal error: %v", err)
	}
	if resp.ID != "w-1" || resp.Status != lava.StatusCreated {
		t.Fatalf("unexpected response: %+v", resp)
	}

	// Inspect the transmitted request, not just the response: set fields
	// travel, unset optionals leave no key behind.
	if captured.Get("order_id") != "order-7" {
		t.Fatalf("order_id not transmitted: %v", captured)
	}
	for _, key := range []string{"hook_url", "substract", "comment"} {
		if _, present := captured[key]; present {
			t.Fatalf("unset optional %q leaked into the body: %v", key, captured)
		}
	}
}

func TestClient_Withdrawal_MalformedHookURL_NoNetworkCall(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.CreateWithdrawal(context.Background(), lava.CreateWithdrawalRequest{
		Account:  "R10000001",
		Amount:   decimal.NewFromInt(100),
		Service:  "lava",
		WalletTo: "R10000002",
		HookURL:  strPtr("::not-a-url::"),
	})
	if !lava.IsValidationError(err) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("validation failures must never reach the network")
	}
}

func TestClient_GetWithdrawal_Status(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/withdraw/info" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"id":"w-1","created_at":1634904000,"amount":"100.00","commission":"5.00","status":"success","service":"lava","currency":"RUB"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	w, err := c.GetWithdrawal(context.Background(), "w-1")
	if err != nil {
		t.Fatalf("GetWithdrawal error: %v", err)
	}
	if w.Status != lava.StatusSuccess || !lava.IsFinal(w.Status) {
		t.Fatalf("unexpected status %q", w.Status)
	}
}
