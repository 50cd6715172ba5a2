package api

import (
	"context"
	"net/http"

	"github.com/docbind/notion-go/internal/request"
	"github.com/docbind/notion-go/internal/types"
)

// Search queries all pages and databases shared with the integration.
// A body key is present iff the corresponding parameter was supplied; with
// no parameters the request is sent without a body and the service returns
// everything accessible.
func Search(ctx context.Context, httpClient *http.Client, baseURL string, p types.SearchParams) (*http.Response, error) {
	var body map[string]any
	if p.Query != "" || p.Sort != nil || p.Filter != nil {
		body = map[string]any{}
		if p.Query != "" {
			body["query"] = p.Query
		}
		if p.Sort != nil {
			body["sort"] = p.Sort
		}
		if p.Filter != nil {
			body["filter"] = p.Filter
		}
	}
	return request.Do(ctx, httpClient, baseURL, request.Descriptor{
		Op:     "search",
		Method: http.MethodPost,
		Path:   "search",
		Body:   body,
	})
}
