package lava

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestAwaitWithdrawal_PollsUntilFinal(t *testing.T) {
	t.Parallel()
	var polls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := StatusPending
		if atomic.AddInt32(&polls, 1) >= 2 {
			status = StatusSuccess
		}
		fmt.Fprintf(w, `{"id":"w-1","status":%q,"amount":100,"commission":5}`, status)
	}))
	defer srv.Close()

	c, err := New("test-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	w, err := c.AwaitWithdrawal(ctx, "w-1")
	if err != nil {
		t.Fatalf("AwaitWithdrawal: %v", err)
	}
	if w.Status != StatusSuccess {
		t.Fatalf("expected final status, got %q", w.Status)
	}
	if atomic.LoadInt32(&polls) < 2 {
		t.Fatal("expected at least two polls")
	}
}

func TestAwaitWithdrawal_CallErrorAborts(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","code":"E5","message":"not found"}`))
	}))
	defer srv.Close()

	c, err := New("test-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.AwaitWithdrawal(context.Background(), "w-1"); !IsAPIError(err) {
		t.Fatalf("expected APIError to abort the wait, got %v", err)
	}
}

func TestAwaitInvoice_ContextCancel(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","invoice":{"id":"inv-1","status":"pending"}}`))
	}))
	defer srv.Close()

	c, err := New("test-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if _, err := c.AwaitInvoice(ctx, GetInvoiceRequest{ID: "inv-1"}); err == nil {
		t.Fatal("expected context deadline error while status stays pending")
	}
}
