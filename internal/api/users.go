package api

import (
	"context"
	"net/http"

	"github.com/docbind/notion-go/internal/request"
	"github.com/docbind/notion-go/internal/types"
)

// RetrieveUser fetches a user by ID.
func RetrieveUser(ctx context.Context, httpClient *http.Client, baseURL, userID string) (*http.Response, error) {
	return request.Do(ctx, httpClient, baseURL, request.Descriptor{
		Op:     "retrieve_user",
		Method: http.MethodGet,
		Path:   "users/" + userID,
	})
}

// ListUsers returns one page of the workspace's users.
func ListUsers(ctx context.Context, httpClient *http.Client, baseURL string, p types.PageParams) (*http.Response, error) {
	size := p.PageSize
	if size == "" {
		size = types.DefaultPageSize
	}
	query := map[string]string{"page_size": size}
	if p.StartCursor != "" {
		query["start_cursor"] = p.StartCursor
	}
	return request.Do(ctx, httpClient, baseURL, request.Descriptor{
		Op:     "list_users",
		Method: http.MethodGet,
		Path:   "users",
		Query:  query,
	})
}
