package api

import (
	"context"
	"net/http"

	"github.com/docbind/notion-go/internal/request"
	"github.com/docbind/notion-go/internal/types"
)

// RetrieveBlockChildren returns one page of a block's children. page_size is
// always present in the query string (it has a default); start_cursor only
// when supplied. A complete representation may require recursing into child
// blocks; that traversal is the caller's concern.
func RetrieveBlockChildren(ctx context.Context, httpClient *http.Client, baseURL, blockID string, p types.PageParams) (*http.Response, error) {
	size := p.PageSize
	if size == "" {
		size = types.DefaultPageSize
	}
	query := map[string]string{"page_size": size}
	if p.StartCursor != "" {
		query["start_cursor"] = p.StartCursor
	}
	return request.Do(ctx, httpClient, baseURL, request.Descriptor{
		Op:     "retrieve_block_children",
		Method: http.MethodGet,
		Path:   "blocks/" + blockID + "/children",
		Query:  query,
	})
}

// AppendBlockChildren appends child blocks to the block with the given ID.
// The body is always {"children": [...]} with caller order preserved.
func AppendBlockChildren(ctx context.Context, httpClient *http.Client, baseURL, blockID string, children []types.Block) (*http.Response, error) {
	return request.Do(ctx, httpClient, baseURL, request.Descriptor{
		Op:     "append_block_children",
		Method: http.MethodPatch,
		Path:   "blocks/" + blockID + "/children",
		Body:   map[string]any{"children": children},
	})
}
