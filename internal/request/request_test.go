package request

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

func TestDo_NilBodyVersusEmptyBody(t *testing.T) {
	t.Parallel()
	// nil means no body at all; a non-nil empty map encodes as "{}".
	var got []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := Do(context.Background(), srv.Client(), srv.URL, Descriptor{Op: "t", Method: http.MethodPost, Path: "p"})
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	_ = resp.Body.Close()
	if len(got) != 0 {
		t.Fatalf("expected absent body, got %q", got)
	}

	resp, err = Do(context.Background(), srv.Client(), srv.URL, Descriptor{Op: "t", Method: http.MethodPost, Path: "p", Body: map[string]any{}})
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	_ = resp.Body.Close()
	if string(got) != "{}" {
		t.Fatalf("expected empty object, got %q", got)
	}
}

func TestDo_QueryEncodedInSortedKeyOrder(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "page_size=100&start_cursor=X" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := Descriptor{
		Op:     "t",
		Method: http.MethodGet,
		Path:   "p",
		Query:  map[string]string{"start_cursor": "X", "page_size": "100"},
	}
	resp, err := Do(context.Background(), srv.Client(), srv.URL, d)
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	_ = resp.Body.Close()
}

func TestDo_TrailingSlashBaseURL(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pages/pg_1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := Do(context.Background(), srv.Client(), srv.URL+"/", Descriptor{Op: "t", Method: http.MethodGet, Path: "pages/pg_1"})
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	_ = resp.Body.Close()
}

func TestDo_CtxCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Do(ctx, http.DefaultClient, "http://example.com", Descriptor{Op: "t", Method: http.MethodGet, Path: "p"}); err == nil {
		t.Fatal("expected context canceled")
	}
}

func TestDo_MarshalError(t *testing.T) {
	t.Parallel()
	d := Descriptor{Op: "t", Method: http.MethodPost, Path: "p", Body: map[string]any{"bad": func() {}}}
	if _, err := Do(context.Background(), http.DefaultClient, "http://example.com", d); err == nil {
		t.Fatal("expected marshal error")
	}
}

func TestDo_TransportError(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	if _, err := Do(context.Background(), hc, "http://example.com", Descriptor{Op: "t", Method: http.MethodGet, Path: "p"}); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestDo_FailedDispatchCountedInBothMetrics(t *testing.T) {
	t.Parallel()
	// A dispatch that fails at the transport level still counts as a
	// dispatched request, in addition to counting as a failure.
	const op = "metrics_failed_dispatch"
	hc := &http.Client{Transport: &errRT{}}
	if _, err := Do(context.Background(), hc, "http://example.com", Descriptor{Op: op, Method: http.MethodGet, Path: "p"}); err == nil {
		t.Fatal("expected transport error")
	}
	if got := testutil.ToFloat64(requestsTotal.WithLabelValues(op)); got != 1 {
		t.Fatalf("requests_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(requestFailuresTotal.WithLabelValues(op)); got != 1 {
		t.Fatalf("request_failures_total = %v, want 1", got)
	}
}
