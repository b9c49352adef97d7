package lava

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// Polling helpers for operations whose status settles asynchronously on the
// server. Each poll is one ordinary one-shot call; the backoff only spaces
// the polls out, it never retries a failed call.

const (
	pollInitialInterval = 500 * time.Millisecond
	pollMaxInterval     = 10 * time.Second
)

// AwaitWithdrawal polls GetWithdrawal until the withdrawal reaches a final
// status or ctx ends. Any call error aborts the wait immediately.
func (c *Client) AwaitWithdrawal(ctx context.Context, id string) (*Withdrawal, error) {
	var w *Withdrawal
	err := c.pollUntilFinal(ctx, func(ctx context.Context) (string, error) {
		var err error
		w, err = c.GetWithdrawal(ctx, id)
		if err != nil {
			return "", err
		}
		return w.Status, nil
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// AwaitInvoice polls GetInvoice until the invoice reaches a final status or
// ctx ends. Any call error aborts the wait immediately.
func (c *Client) AwaitInvoice(ctx context.Context, req GetInvoiceRequest) (*Invoice, error) {
	var inv *Invoice
	err := c.pollUntilFinal(ctx, func(ctx context.Context) (string, error) {
		var err error
		inv, err = c.GetInvoice(ctx, req)
		if err != nil {
			return "", err
		}
		return inv.Status, nil
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (c *Client) pollUntilFinal(ctx context.Context, fetch func(context.Context) (string, error)) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = pollInitialInterval
	exp.Multiplier = 2
	exp.MaxInterval = pollMaxInterval
	exp.MaxElapsedTime = 0 // bounded by ctx, not by the backoff
	exp.Reset()

	for {
		status, err := fetch(ctx)
		if err != nil {
			return err
		}
		if IsFinal(status) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(exp.NextBackOff()):
		}
	}
}
