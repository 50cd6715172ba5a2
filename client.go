// Package notion is a thin client binding for the Notion HTTP API
// (Notion-Version 2021-05-13, internal integrations only).
//
// Each method maps to one endpoint: it assembles a request body or query
// string from the parameters that were actually supplied, dispatches one
// blocking HTTP call over a persistent connection, and returns the raw
// *http.Response. The SDK never interprets status codes and never decodes
// response bodies; callers own resp.Body and must close it. The only error
// the SDK itself raises is ErrMissingToken at construction time.
package notion

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/docbind/notion-go/internal/api"
)

const (
	// BaseURL is the fixed service endpoint all paths are relative to.
	BaseURL = "https://api.notion.com/v1/"
	// APIVersion is sent as the Notion-Version header on every request.
	APIVersion = "2021-05-13"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	token   string // internal integration token (public integrations not supported)

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client with the given integration token. Additional
// options can be provided via functional arguments. No network I/O happens
// here; the first request is issued by the first operation call.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	c := &Client{
		baseURL: BaseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap the HTTP transport so every request carries the fixed header set.
	c.wrapTransportWithHeaders()

	return c, nil
}

// wrapTransportWithHeaders wraps the HTTP client's transport to add the
// Authorization, Content-Type and Notion-Version headers to all requests.
func (c *Client) wrapTransportWithHeaders() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &headerTransport{
		base:  baseTransport,
		token: c.token,
	}
}

// headerTransport wraps an http.RoundTripper to add the fixed header set.
type headerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	cloned.Header.Set("Content-Type", "application/json")
	cloned.Header.Set("Notion-Version", APIVersion)
	return t.base.RoundTrip(cloned)
}

// Close releases idle connections held by the client. Safe to call multiple
// times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

// --------------------------------------------------------------------
// Search - delegated to internal/api
// --------------------------------------------------------------------

// Search queries all pages and child pages shared with the integration; the
// results may include databases. With no parameters the service returns all
// accessible items. Search indexing is not immediate: a page shared moments
// ago may not appear yet.
func (c *Client) Search(ctx context.Context, p SearchParams) (*http.Response, error) {
	return api.Search(ctx, c.http, c.baseURL, p)
}

// --------------------------------------------------------------------
// Database operations - delegated to internal/api
// --------------------------------------------------------------------

// RetrieveDatabase retrieves a database object by ID.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (*http.Response, error) {
	return api.RetrieveDatabase(ctx, c.http, c.baseURL, databaseID)
}

// QueryDatabase lists the pages contained in a database, filtered and
// ordered according to the supplied criteria. Earlier sorts take precedence
// over later ones.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, p QueryDatabaseParams) (*http.Response, error) {
	return api.QueryDatabase(ctx, c.http, c.baseURL, databaseID, p)
}

// --------------------------------------------------------------------
// Page operations - delegated to internal/api
// --------------------------------------------------------------------

// RetrievePage retrieves a page object by ID.
func (c *Client) RetrievePage(ctx context.Context, pageID string) (*http.Response, error) {
	return api.RetrievePage(ctx, c.http, c.baseURL, pageID)
}

// CreatePage creates a new page in the specified database or as a child of
// an existing page. If the parent is a database, Properties must conform to
// the parent database's property schema; if the parent is a page, the only
// valid property is "title".
func (c *Client) CreatePage(ctx context.Context, p CreatePageParams) (*http.Response, error) {
	return api.CreatePage(ctx, c.http, c.baseURL, p)
}

// UpdatePage updates property values on a page. Properties not present in
// the supplied map remain unchanged.
func (c *Client) UpdatePage(ctx context.Context, pageID string, properties Properties) (*http.Response, error) {
	return api.UpdatePage(ctx, c.http, c.baseURL, pageID, properties)
}

// --------------------------------------------------------------------
// Block operations - delegated to internal/api
// --------------------------------------------------------------------

// RetrieveBlockChildren returns one page of child block objects contained in
// the block with the given ID.
func (c *Client) RetrieveBlockChildren(ctx context.Context, blockID string, p PageParams) (*http.Response, error) {
	return api.RetrieveBlockChildren(ctx, c.http, c.baseURL, blockID, p)
}

// AppendBlockChildren creates and appends new child blocks to the block with
// the given ID. Once appended, a block cannot be updated or deleted through
// this API version.
func (c *Client) AppendBlockChildren(ctx context.Context, blockID string, children []Block) (*http.Response, error) {
	return api.AppendBlockChildren(ctx, c.http, c.baseURL, blockID, children)
}

// --------------------------------------------------------------------
// User operations - delegated to internal/api
// --------------------------------------------------------------------

// RetrieveUser retrieves a user by ID.
func (c *Client) RetrieveUser(ctx context.Context, userID string) (*http.Response, error) {
	return api.RetrieveUser(ctx, c.http, c.baseURL, userID)
}

// ListUsers returns one page of the workspace's users.
func (c *Client) ListUsers(ctx context.Context, p PageParams) (*http.Response, error) {
	return api.ListUsers(ctx, c.http, c.baseURL, p)
}
