package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options are applied in order. The debug transport is installed after all
// options ran, so WithDebugLogging and WithHTTPClient may appear in any order.
type Option func(*Client) error

// WithHTTPClient replaces the http.Client used for every call. The client's
// transport is the network collaborator; the SDK never retries on it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging logs each request and response through the client logger
// when enabled is true.
//
// Do not enable this option in production environments: dumps include
// request bodies, and request bodies carry the consumer key and access token.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}

// WithBaseURL points the client at another service root, e.g. a test server.
func WithBaseURL(base string) Option {
	return func(c *Client) error {
		if err := checkAbsoluteURL("base url", base); err != nil {
			return err
		}
		c.baseURL = base
		return nil
	}
}

// WithAuthorizeURL sets the page AuthURL points users to.
func WithAuthorizeURL(authorize string) Option {
	return func(c *Client) error {
		if err := checkAbsoluteURL("authorize url", authorize); err != nil {
			return err
		}
		c.authorizeURL = authorize
		return nil
	}
}

// WithRedirectURI sets where the service sends the user after approval.
func WithRedirectURI(uri string) Option {
	return func(c *Client) error {
		if uri == "" {
			return fmt.Errorf("redirect uri cannot be empty")
		}
		c.redirectURI = uri
		return nil
	}
}

// WithOAuthState sends state with the request-token call.
func WithOAuthState(state string) Option {
	return func(c *Client) error {
		c.state = &state
		return nil
	}
}

// WithAccessToken restores a previously obtained access token, skipping the
// authorization flow.
func WithAccessToken(token string) Option {
	return func(c *Client) error {
		c.accessToken = token
		return nil
	}
}

// WithLogger replaces the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

func checkAbsoluteURL(what, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be absolute: %q", what, raw)
	}
	return nil
}
