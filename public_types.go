package notion

import "github.com/docbind/notion-go/internal/types"

// Public type aliases so SDK consumers can import only the notion package.
type (
	// Request parameters
	SearchParams        = types.SearchParams
	SearchSort          = types.SearchSort
	SearchFilter        = types.SearchFilter
	QueryDatabaseParams = types.QueryDatabaseParams
	QuerySort           = types.QuerySort
	CreatePageParams    = types.CreatePageParams
	PageParams          = types.PageParams

	// Domain values
	Block      = types.Block
	Properties = types.Properties
	ParentKind = types.ParentKind
)

const (
	// ParentAuto classifies the parent identifier by shape: hyphenated IDs
	// become page parents, unhyphenated ones database parents. Both page and
	// database IDs are typically hyphenated UUIDs, so prefer setting the
	// kind explicitly.
	ParentAuto     = types.ParentAuto
	ParentPage     = types.ParentPage
	ParentDatabase = types.ParentDatabase

	// DefaultPageSize is used whenever a page size is not supplied.
	DefaultPageSize = types.DefaultPageSize
)

// ParentKindFor classifies a parent identifier using the hyphen heuristic.
func ParentKindFor(id string) ParentKind { return types.ParentKindFor(id) }

// NormalizeID canonicalizes a resource identifier to hyphenated UUID form.
func NormalizeID(id string) (string, error) { return types.NormalizeID(id) }

// Errors re-exported in errors.go
