package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	clierr "github.com/mycelian/readlater/client/internal/errors"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Endpoint paths, relative to the service base URL.
const (
	PathRequestToken = "/v3/oauth/request"
	PathAuthorize    = "/v3/oauth/authorize"
	PathAdd          = "/v3/add"
	PathGet          = "/v3/get"
	PathSend         = "/v3/send"
)

// Operation names carried by errors and metrics.
const (
	OpRequestToken = "request_token"
	OpAuthorize    = "authorize"
	OpAdd          = "add"
	OpGet          = "get"
	OpSend         = "send"
)

const (
	contentType = "application/json; charset=UTF-8"
	acceptType  = "application/json"
)

// maxBodyBytes caps how much of a response body is read. Get responses with
// complete detail are the largest payloads the service sends.
const maxBodyBytes = 64 << 20

// post sends payload to baseURL+path and returns the raw success body.
// Every failure is an *errors.Error of the matching kind.
func post(ctx context.Context, hc HTTPClient, op, baseURL, path string, payload json.Marshaler) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, clierr.NewTransportError(op, err)
	}
	body, err := payload.MarshalJSON()
	if err != nil {
		return nil, clierr.NewEncodeError(op, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, clierr.NewEncodeError(op, err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("X-Accept", acceptType)

	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, clierr.NewTransportError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if perr := clierr.FromResponse(op, resp.StatusCode, resp.Header); perr != nil {
		return nil, perr
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, clierr.NewTransportError(op, err)
	}
	return raw, nil
}

// decode runs fn over a success body, reporting failures as Decode errors.
func decode[T any](op string, raw json.RawMessage, fn func(json.RawMessage) (T, error)) (*T, error) {
	v, err := fn(raw)
	if err != nil {
		return nil, clierr.NewDecodeError(op, err)
	}
	return &v, nil
}
