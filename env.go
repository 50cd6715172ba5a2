package notion

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envConfig is populated from NOTION_* environment variables.
type envConfig struct {
	Token       string        `envconfig:"TOKEN"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT"`
	Debug       bool          `envconfig:"DEBUG"`
}

// NewFromEnv constructs a Client from the environment:
//
//	NOTION_TOKEN         integration token (required)
//	NOTION_HTTP_TIMEOUT  http.Client timeout, e.g. "45s" (optional)
//	NOTION_DEBUG         "true" enables request/response logging (optional)
//
// Explicit options are applied after the env-derived ones and win on
// conflict. A missing NOTION_TOKEN yields ErrMissingToken.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg envConfig
	if err := envconfig.Process("notion", &cfg); err != nil {
		return nil, err
	}
	envOpts := make([]Option, 0, 2)
	if cfg.HTTPTimeout > 0 {
		envOpts = append(envOpts, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	// New auto-enables debug logging itself when NOTION_DEBUG=true; only add
	// the option here for spellings envconfig accepts but that check does
	// not (e.g. NOTION_DEBUG=1), so the transport is never installed twice.
	if cfg.Debug && !debugLoggingRequested() {
		envOpts = append(envOpts, WithDebugLogging(true))
	}
	return New(cfg.Token, append(envOpts, opts...)...)
}
