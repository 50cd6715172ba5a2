package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrMissingToken is returned when a client is constructed without an
// integration token.
var ErrMissingToken = errors.New("no access token")

// ------------------------------
// Identifier Helpers
// ------------------------------

// ParentKindFor classifies a parent identifier by shape: identifiers
// containing a hyphen are treated as page parents, identifiers without one
// as database parents.
//
// This heuristic is fragile: the service formats both page and database IDs
// as hyphenated UUIDs, so hyphenated database IDs classify as page parents.
// Callers who know the parent type should set CreatePageParams.ParentKind
// explicitly instead of relying on this.
func ParentKindFor(id string) ParentKind {
	if strings.Contains(id, "-") {
		return ParentPage
	}
	return ParentDatabase
}

// NormalizeID canonicalizes a resource identifier to the hyphenated UUID
// form. The service hands out IDs both as 32 hex characters and as
// hyphenated UUIDs; both parse here.
func NormalizeID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("normalize id %q: %w", id, err)
	}
	return u.String(), nil
}
