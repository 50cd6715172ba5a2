package types

// ------------------------------
// Request Parameter Types
// ------------------------------

// DefaultPageSize is the page size sent when the caller supplies none.
// It is the string literal "100", not a number; the wire contract was
// established with a string value and the service accepts it.
const DefaultPageSize = "100"

// SearchSort orders search results.
type SearchSort struct {
	Direction string `json:"direction"`
	Timestamp string `json:"timestamp"`
}

// SearchFilter restricts search results. The service currently only accepts
// Property "object" with Value "page" or "database".
type SearchFilter struct {
	Value    string `json:"value"`
	Property string `json:"property"`
}

// SearchParams holds the optional search inputs. Zero-value fields are
// omitted from the request body entirely; when all three are zero the
// request carries no body at all.
type SearchParams struct {
	Query  string
	Sort   *SearchSort
	Filter *SearchFilter
}

// QuerySort is one sort criterion for a database query. Order within the
// slice is significant: earlier entries take precedence.
type QuerySort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// QueryDatabaseParams holds the optional database-query inputs.
// PageSize defaults to DefaultPageSize, so the query body is never absent.
type QueryDatabaseParams struct {
	Filter      map[string]any
	Sorts       []QuerySort
	StartCursor string
	PageSize    string
}

// CreatePageParams holds the optional page-creation inputs.
//
// ParentKind overrides the hyphen heuristic when set; with ParentAuto the
// parent identifier is classified by ParentKindFor.
type CreatePageParams struct {
	ParentID   string
	ParentKind ParentKind
	Properties Properties
	Children   []Block
}

// PageParams carries pagination inputs for list endpoints. PageSize defaults
// to DefaultPageSize and is always present in the query string; StartCursor
// is appended only when supplied.
type PageParams struct {
	StartCursor string
	PageSize    string
}
