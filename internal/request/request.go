// Package request is the single dispatch point for all API traffic. Every
// endpoint builds a Descriptor and hands it to Do; no other code constructs
// HTTP requests.
package request

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strings"
)

// Descriptor is an ephemeral, per-call description of one API request.
type Descriptor struct {
	// Op labels the operation for metrics ("search", "query_database", ...).
	Op string
	// Method is the HTTP method.
	Method string
	// Path is relative to the client's base URL ("pages", "databases/{id}/query").
	Path string
	// Body is the JSON request body. nil means no body is sent at all; a
	// non-nil empty map encodes as "{}". The distinction matters: page
	// creation sends "{}" when nothing was supplied, every other operation
	// sends no body.
	Body map[string]any
	// Query holds query parameters, encoded in sorted-key order.
	Query map[string]string
}

// Do marshals the descriptor and dispatches it. The response is returned
// uninterpreted: no status-code checks, no body decoding. The caller owns
// resp.Body and must close it.
func Do(ctx context.Context, httpClient *http.Client, baseURL string, d Descriptor) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var body io.Reader
	if d.Body != nil {
		b, err := json.Marshal(d.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(b)
	}
	url := strings.TrimSuffix(baseURL, "/") + "/" + d.Path
	if len(d.Query) > 0 {
		url += "?" + encodeQuery(d.Query)
	}
	httpReq, err := http.NewRequestWithContext(ctx, d.Method, url, body)
	if err != nil {
		return nil, err
	}

	requestsTotal.WithLabelValues(d.Op).Inc()
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		requestFailuresTotal.WithLabelValues(d.Op).Inc()
		return nil, err
	}
	return resp, nil
}

// encodeQuery encodes parameters in sorted-key order so identical inputs
// always produce identical URLs. Values are cursors and page sizes, which
// the service hands out URL-safe, so they are appended verbatim.
func encodeQuery(q map[string]string) string {
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(q[k])
	}
	return sb.String()
}
