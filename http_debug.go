package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// debugTransport provides detailed HTTP request/response logging for debugging client issues.
//
// When to use:
//   - Set READLATER_DEBUG=true or DEBUG=true environment variable
//   - Pass WithDebugLogging(true) to New
//
// Security considerations:
//   - Dumps full request bodies, which carry the consumer key and access token
//   - Only enable in development environments
//
// Each request/response pair shares a request_id so dumps can be correlated.
//
// Example usage:
//
//	export READLATER_DEBUG=true
//	go run main.go  # Client will now log all HTTP traffic
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}
	id := uuid.NewString()

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.logger.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - READLATER_DEBUG=true (client-specific debug flag)
//   - DEBUG=true (general debug flag, common in development workflows)
//
// Returns true if either environment variable is set to "true" (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("READLATER_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
