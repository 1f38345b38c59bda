package types

import "github.com/mycelian/readlater/client/internal/wire"

// ------------------------------
// Request Types
// ------------------------------
//
// Every request type encodes itself through MarshalJSON so the wire shape of
// each one is spelled out here; unset optional fields are omitted, never null.

// Credentials identify the application and the authorized user.
type Credentials struct {
	ConsumerKey string
	AccessToken string
}

func (c Credentials) encode(o *wire.Object) *wire.Object {
	return o.Str("consumer_key", c.ConsumerKey).Str("access_token", c.AccessToken)
}

// OAuthRequest asks for a request token.
type OAuthRequest struct {
	ConsumerKey string
	RedirectURI string
	State       *string
}

func (r OAuthRequest) MarshalJSON() ([]byte, error) {
	return wire.NewObject().
		Str("consumer_key", r.ConsumerKey).
		Str("redirect_uri", r.RedirectURI).
		OptStr("state", r.State).
		Bytes()
}

// AuthorizeRequest exchanges an authorized request token for an access token.
type AuthorizeRequest struct {
	ConsumerKey string
	Code        string
}

func (r AuthorizeRequest) MarshalJSON() ([]byte, error) {
	return wire.NewObject().
		Str("consumer_key", r.ConsumerKey).
		Str("code", r.Code).
		Bytes()
}

// AddRequest saves a single URL.
type AddRequest struct {
	Credentials
	URL     string
	Title   *string
	Tags    *string
	TweetID *string
}

func (r AddRequest) MarshalJSON() ([]byte, error) {
	return r.Credentials.encode(wire.NewObject()).
		Str("url", r.URL).
		OptStr("title", r.Title).
		OptStr("tags", r.Tags).
		OptStr("tweet_id", r.TweetID).
		Bytes()
}

// GetRequest lists saved items matching a Filter.
type GetRequest struct {
	Credentials
	Filter *Filter
}

func (r GetRequest) MarshalJSON() ([]byte, error) {
	o := r.Credentials.encode(wire.NewObject())
	if r.Filter != nil {
		r.Filter.encode(o)
	}
	return o.Bytes()
}

// SendRequest submits a batch of actions. Results come back in the same order.
type SendRequest struct {
	Credentials
	Actions []Action
}

func (r SendRequest) MarshalJSON() ([]byte, error) {
	actions := r.Actions
	if actions == nil {
		actions = []Action{}
	}
	return r.Credentials.encode(wire.NewObject()).
		Value("actions", actions).
		Bytes()
}
