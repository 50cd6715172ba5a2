package notion

import (
	"context"
	"net/http"
	"testing"
)

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("NOTION_DEBUG", "true")
	c, err := New("secret_tok")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()
	ht, ok := c.http.Transport.(*headerTransport)
	if !ok {
		t.Fatalf("expected headerTransport outermost, got %T", c.http.Transport)
	}
	if _, ok := ht.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to be installed when NOTION_DEBUG=true, got %T", ht.base)
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	// base transport returns error
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := New("secret_tok", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
}
