package mock

import (
	"net/http/httptest"
	"testing"

	lava "github.com/1ort/lava-go"
)

func newTestClient(t *testing.T, srv *httptest.Server) *lava.Client {
	t.Helper()
	c, err := lava.New("test-api-key", lava.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
