package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// ParentKind names the container type a new page is created under.
type ParentKind string

const (
	// ParentAuto defers classification to the hyphen heuristic, see ParentKindFor.
	ParentAuto ParentKind = ""
	// ParentPage creates the page as a child of another page.
	ParentPage ParentKind = "page_id"
	// ParentDatabase creates the page as a row of a database.
	ParentDatabase ParentKind = "database_id"
)

// Block is an untyped block object (paragraph, heading, list item, ...).
// The service defines the schema; this SDK passes blocks through verbatim.
type Block map[string]any

// Properties maps property names or IDs to property value objects.
type Properties map[string]any
