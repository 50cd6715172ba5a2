package api

import (
	"context"
	"net/http"

	"github.com/docbind/notion-go/internal/request"
	"github.com/docbind/notion-go/internal/types"
)

// Note: the service's list-databases endpoint is deliberately absent; the
// service recommends search instead.

// RetrieveDatabase fetches a database object by ID.
func RetrieveDatabase(ctx context.Context, httpClient *http.Client, baseURL, databaseID string) (*http.Response, error) {
	return request.Do(ctx, httpClient, baseURL, request.Descriptor{
		Op:     "retrieve_database",
		Method: http.MethodGet,
		Path:   "databases/" + databaseID,
	})
}

// QueryDatabase lists the pages contained in a database, filtered and
// ordered by the supplied criteria. Sort order in p.Sorts is passed through
// unmodified; earlier entries take precedence. Because page size carries a
// default, the body is non-empty on every call.
func QueryDatabase(ctx context.Context, httpClient *http.Client, baseURL, databaseID string, p types.QueryDatabaseParams) (*http.Response, error) {
	body := map[string]any{}
	if len(p.Filter) > 0 {
		body["filter"] = p.Filter
	}
	if len(p.Sorts) > 0 {
		body["sorts"] = p.Sorts
	}
	if p.StartCursor != "" {
		body["start_cursor"] = p.StartCursor
	}
	size := p.PageSize
	if size == "" {
		size = types.DefaultPageSize
	}
	body["page_size"] = size
	return request.Do(ctx, httpClient, baseURL, request.Descriptor{
		Op:     "query_database",
		Method: http.MethodPost,
		Path:   "databases/" + databaseID + "/query",
		Body:   body,
	})
}
