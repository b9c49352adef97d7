package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/1ort/lava-go/internal/types"
)

func TestListTransactions_FiltersTransmitted(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions/list" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = r.ParseForm()
		if got := r.PostForm.Get("transfer_type"); got != "withdraw" {
			t.Errorf("transfer_type not transmitted, got %q", got)
		}
		if _, present := r.PostForm["account"]; present {
			t.Error("unset account filter must be absent from the body")
		}
		_, _ = w.Write([]byte(`[{"id":"tx-1","created_at":1634904000,"amount":"10.00","commission":"0.50","status":"success","transfer_type":"withdraw","method":"card","currency":"RUB","account":"R10000001","type":"out","receiver":"card_5553"}]`))
	}))
	defer srv.Close()

	withdraw := "withdraw"
	got, err := ListTransactions(context.Background(), srv.Client(), srv.URL, types.ListTransactionsRequest{TransferType: &withdraw})
	if err != nil {
		t.Fatalf("ListTransactions error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "tx-1" || got[0].TransferType != "withdraw" {
		t.Fatalf("unexpected transactions: %+v", got)
	}
}

func TestListTransactions_NoFilters(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if len(r.PostForm) != 0 {
			t.Errorf("expected empty form, got %v", r.PostForm)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	got, err := ListTransactions(context.Background(), srv.Client(), srv.URL, types.ListTransactionsRequest{})
	if err != nil {
		t.Fatalf("ListTransactions error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %+v", got)
	}
}

func TestListTransactions_InvalidFilter(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	deposit := "deposit"
	_, err := ListTransactions(context.Background(), srv.Client(), srv.URL, types.ListTransactionsRequest{TransferType: &deposit})
	var verrs types.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
}
