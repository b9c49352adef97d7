package api

import (
	"fmt"
	"net/http"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// errorBody is the canonical failure envelope the API returns inside HTTP 200.
const errorBody = `{"status":"error","code":"E1","message":"bad account"}`
