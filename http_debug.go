package notion

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps each request and response for troubleshooting API
// communication (malformed bodies, unexpected statuses, auth issues).
//
// Enable with WithDebugLogging or by setting NOTION_DEBUG=true (or
// DEBUG=true). Dumps include the Authorization header and full payloads, so
// keep this out of production environments and secure any log output.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether HTTP debug logging was requested via
// environment. NOTION_DEBUG targets this SDK specifically; DEBUG is the
// broader development flag. Both must be the literal "true".
func debugLoggingRequested() bool {
	return os.Getenv("NOTION_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
