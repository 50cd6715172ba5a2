package notion

import (
	"errors"

	"github.com/docbind/notion-go/internal/types"
)

// ErrMissingToken is returned by New when no integration token is supplied.
// It is the only error this SDK raises on its own behalf: transport
// failures propagate as-is and HTTP statuses are never translated.
var ErrMissingToken = types.ErrMissingToken

// IsMissingToken reports whether err is the missing-token error.
func IsMissingToken(err error) bool { return errors.Is(err, ErrMissingToken) }
