package api

import (
	"context"
	"net/http"

	"github.com/docbind/notion-go/internal/request"
	"github.com/docbind/notion-go/internal/types"
)

// RetrievePage fetches a page object by ID.
func RetrievePage(ctx context.Context, httpClient *http.Client, baseURL, pageID string) (*http.Response, error) {
	return request.Do(ctx, httpClient, baseURL, request.Descriptor{
		Op:     "retrieve_page",
		Method: http.MethodGet,
		Path:   "pages/" + pageID,
	})
}

// CreatePage creates a new page under a database or an existing page.
//
// Unlike the other operations, the body is always an object: with nothing
// supplied it is sent as "{}", not omitted. The wire contract depends on
// that asymmetry.
func CreatePage(ctx context.Context, httpClient *http.Client, baseURL string, p types.CreatePageParams) (*http.Response, error) {
	body := map[string]any{}
	if p.ParentID != "" {
		kind := p.ParentKind
		if kind == types.ParentAuto {
			kind = types.ParentKindFor(p.ParentID)
		}
		body["parent"] = map[string]any{string(kind): p.ParentID}
	}
	if len(p.Properties) > 0 {
		body["properties"] = p.Properties
	}
	if len(p.Children) > 0 {
		body["children"] = p.Children
	}
	return request.Do(ctx, httpClient, baseURL, request.Descriptor{
		Op:     "create_page",
		Method: http.MethodPost,
		Path:   "pages",
		Body:   body,
	})
}

// UpdatePage updates page property values. The supplied properties object is
// the entire request body, not wrapped under a "properties" key; properties
// not present in it remain unchanged on the page. With no properties (nil or
// empty map) no body is sent.
func UpdatePage(ctx context.Context, httpClient *http.Client, baseURL, pageID string, properties types.Properties) (*http.Response, error) {
	var body map[string]any
	if len(properties) > 0 {
		body = properties
	}
	return request.Do(ctx, httpClient, baseURL, request.Descriptor{
		Op:     "update_page",
		Method: http.MethodPatch,
		Path:   "pages/" + pageID,
		Body:   body,
	})
}
