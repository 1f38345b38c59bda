package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mycelian/readlater/client/internal/api"
	clierr "github.com/mycelian/readlater/client/internal/errors"
	"github.com/mycelian/readlater/client/internal/types"
)

// Service defaults.
const (
	DefaultBaseURL      = "https://getpocket.com"
	DefaultAuthorizeURL = "https://getpocket.com/auth/authorize"
	DefaultRedirectURI  = "readlater:finishauth"
	DefaultHTTPTimeout  = 30 * time.Second
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a session with the reading-list service.
//
// The session state (access token and pending request token) is changed only
// by AuthURL and Authorize, which must be called in that order by a single
// caller. Client does no locking; sharing one Client across goroutines while
// authorizing is unsupported. Once authorized, Add, Get and Send only read
// session state.
type Client struct {
	baseURL      string
	authorizeURL string
	redirectURI  string
	state        *string
	http         *http.Client
	logger       zerolog.Logger
	debug        bool

	consumerKey string
	accessToken string
	code        string // pending request token between AuthURL and Authorize
}

// New constructs a Client for the given consumer key.
// Additional options can be provided via functional arguments.
func New(consumerKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(consumerKey) == "" {
		return nil, clierr.NewEncodeError("new", ErrMissingConsumerKey)
	}

	c := &Client{
		baseURL:      DefaultBaseURL,
		authorizeURL: DefaultAuthorizeURL,
		redirectURI:  DefaultRedirectURI,
		consumerKey:  consumerKey,
		http:         &http.Client{Timeout: DefaultHTTPTimeout},
		logger:       log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	// Installed last so it wraps whichever transport the options left in place.
	if c.debug {
		c.http.Transport = &debugTransport{base: c.http.Transport, logger: c.logger}
	}
	return c, nil
}

// ConsumerKey returns the application key the client was built with.
func (c *Client) ConsumerKey() string { return c.consumerKey }

// AccessToken returns the current access token, or "" before Authorize.
// Persisting it across runs is up to the caller; see WithAccessToken.
func (c *Client) AccessToken() string { return c.accessToken }

func (c *Client) credentials() types.Credentials {
	return types.Credentials{ConsumerKey: c.consumerKey, AccessToken: c.accessToken}
}

// observe records metrics and logs for one endpoint call.
func (c *Client) observe(op string, start time.Time, err error) {
	elapsed := time.Since(start)
	requestDuration.WithLabelValues(op).Observe(elapsed.Seconds())

	if err == nil {
		requestsTotal.WithLabelValues(op, "ok").Inc()
		c.logger.Debug().Str("endpoint", op).Dur("duration", elapsed).Msg("request completed")
		return
	}

	kind, _ := clierr.KindOf(err)
	requestsTotal.WithLabelValues(op, strings.ToLower(kind.String())).Inc()
	if code, msg, ok := IsProtocol(err); ok {
		c.logger.Warn().Str("endpoint", op).Uint("code", code).Str("message", msg).Msg("service reported error")
		return
	}
	c.logger.Debug().Err(err).Str("endpoint", op).Dur("duration", elapsed).Msg("request failed")
}

// --------------------------------------------------------------------
// Authorization - delegated to internal/api
// --------------------------------------------------------------------

// AuthURL obtains a request token and returns the page where the user
// approves it. The token is kept as the pending code for Authorize; calling
// AuthURL again replaces it. The URL is not opened.
func (c *Client) AuthURL(ctx context.Context) (u *url.URL, err error) {
	defer func(start time.Time) { c.observe(api.OpRequestToken, start, err) }(time.Now())

	resp, err := api.RequestToken(ctx, c.http, c.baseURL, types.OAuthRequest{
		ConsumerKey: c.consumerKey,
		RedirectURI: c.redirectURI,
		State:       c.state,
	})
	if err != nil {
		return nil, err
	}
	u, err = api.AuthorizeURL(c.authorizeURL, resp.Code, c.redirectURI)
	if err != nil {
		return nil, err
	}
	c.code = resp.Code
	return u, nil
}

// Authorize exchanges the pending code from AuthURL for an access token once
// the user has approved it. It stores the token, clears the pending code and
// returns the authorizing username.
func (c *Client) Authorize(ctx context.Context) (username string, err error) {
	defer func(start time.Time) { c.observe(api.OpAuthorize, start, err) }(time.Now())

	resp, err := api.Authorize(ctx, c.http, c.baseURL, types.AuthorizeRequest{
		ConsumerKey: c.consumerKey,
		Code:        c.code,
	})
	if err != nil {
		return "", err
	}
	c.accessToken = resp.AccessToken
	c.code = ""
	return resp.Username, nil
}

// --------------------------------------------------------------------
// Item operations - delegated to internal/api
// --------------------------------------------------------------------

// AddOption sets an optional field of an Add call.
type AddOption func(*types.AddRequest)

// AddTitle sets the title used when the service cannot resolve one.
func AddTitle(title string) AddOption { return func(r *types.AddRequest) { r.Title = &title } }

// AddTags sets a comma-separated tag list.
func AddTags(tags string) AddOption { return func(r *types.AddRequest) { r.Tags = &tags } }

// AddTweetID links the saved item to a tweet.
func AddTweetID(id string) AddOption { return func(r *types.AddRequest) { r.TweetID = &id } }

// Add saves rawURL to the reading list.
func (c *Client) Add(ctx context.Context, rawURL string, opts ...AddOption) (resp *AddResponse, err error) {
	defer func(start time.Time) { c.observe(api.OpAdd, start, err) }(time.Now())

	req := types.AddRequest{Credentials: c.credentials(), URL: rawURL}
	for _, opt := range opts {
		opt(&req)
	}
	return api.AddItem(ctx, c.http, c.baseURL, req)
}

// Push saves rawURL with no title, tags or tweet.
func (c *Client) Push(ctx context.Context, rawURL string) (*AddResponse, error) {
	return c.Add(ctx, rawURL)
}

// Get lists saved items. A nil filter sends no clauses.
func (c *Client) Get(ctx context.Context, filter *Filter) (resp *GetResponse, err error) {
	defer func(start time.Time) { c.observe(api.OpGet, start, err) }(time.Now())

	return api.GetItems(ctx, c.http, c.baseURL, types.GetRequest{Credentials: c.credentials(), Filter: filter})
}

// Send submits actions as one batch and returns one result per action, in
// the order given.
func (c *Client) Send(ctx context.Context, actions ...Action) (results []bool, err error) {
	defer func(start time.Time) { c.observe(api.OpSend, start, err) }(time.Now())

	resp, err := api.SendActions(ctx, c.http, c.baseURL, types.SendRequest{Credentials: c.credentials(), Actions: actions})
	if err != nil {
		return nil, err
	}
	for _, a := range actions {
		actionsSubmittedTotal.WithLabelValues(a.Name()).Inc()
	}
	return resp.ActionResults, nil
}
