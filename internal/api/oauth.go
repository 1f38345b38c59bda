package api

import (
	"context"
	"net/url"

	clierr "github.com/mycelian/readlater/client/internal/errors"
	"github.com/mycelian/readlater/client/internal/types"
)

// RequestToken obtains a request token ("code") for the consumer key.
func RequestToken(ctx context.Context, httpClient HTTPClient, baseURL string, req types.OAuthRequest) (*types.OAuthResponse, error) {
	raw, err := post(ctx, httpClient, OpRequestToken, baseURL, PathRequestToken, req)
	if err != nil {
		return nil, err
	}
	return decode(OpRequestToken, raw, types.DecodeOAuthResponse)
}

// Authorize exchanges an approved request token for an access token.
func Authorize(ctx context.Context, httpClient HTTPClient, baseURL string, req types.AuthorizeRequest) (*types.AuthorizeResponse, error) {
	if req.Code == "" {
		return nil, clierr.NewEncodeError(OpAuthorize, types.ErrNoPendingCode)
	}
	raw, err := post(ctx, httpClient, OpAuthorize, baseURL, PathAuthorize, req)
	if err != nil {
		return nil, err
	}
	return decode(OpAuthorize, raw, types.DecodeAuthorizeResponse)
}

// AuthorizeURL builds the page the user visits to approve the request token.
// Existing query parameters on authorizeURL are kept.
func AuthorizeURL(authorizeURL, code, redirectURI string) (*url.URL, error) {
	u, err := url.Parse(authorizeURL)
	if err != nil {
		return nil, clierr.NewEncodeError(OpRequestToken, err)
	}
	q := u.Query()
	q.Set("request_token", code)
	q.Set("redirect_uri", redirectURI)
	u.RawQuery = q.Encode()
	return u, nil
}
