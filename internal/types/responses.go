package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mycelian/readlater/client/internal/wire"
)

// ------------------------------
// Response Types
// ------------------------------

// OAuthResponse carries the request token ("code").
type OAuthResponse struct {
	Code  string
	State *string
}

// AuthorizeResponse carries the access token and the authorizing user.
type AuthorizeResponse struct {
	AccessToken string
	Username    string
}

// AddResponse wraps the item created by the add operation.
type AddResponse struct {
	Item   AddedItem
	Status uint16
}

// GetResponse is the decoded get operation result. Error is nil when the
// service reported no error message.
type GetResponse struct {
	Items    []Item
	Status   uint16
	Complete bool
	Error    *string
	Since    time.Time
}

// SendResponse holds one result per submitted action, in submission order.
type SendResponse struct {
	Status        uint16
	ActionResults []bool
}

// DecodeOAuthResponse decodes the request-token response body.
func DecodeOAuthResponse(raw json.RawMessage) (OAuthResponse, error) {
	r := wire.NewRecord("oauth response", raw)
	resp := OAuthResponse{Code: r.String("code"), State: r.OptString("state")}
	if err := r.Err(); err != nil {
		return OAuthResponse{}, err
	}
	return resp, nil
}

// DecodeAuthorizeResponse decodes the authorize response body.
func DecodeAuthorizeResponse(raw json.RawMessage) (AuthorizeResponse, error) {
	r := wire.NewRecord("authorize response", raw)
	resp := AuthorizeResponse{AccessToken: r.String("access_token"), Username: r.String("username")}
	if err := r.Err(); err != nil {
		return AuthorizeResponse{}, err
	}
	return resp, nil
}

// DecodeAddResponse decodes the add response body.
func DecodeAddResponse(raw json.RawMessage) (AddResponse, error) {
	r := wire.NewRecord("add response", raw)
	item := r.Raw("item")
	var resp AddResponse
	if r.Err() == nil {
		var err error
		resp.Item, err = DecodeAddedItem(item)
		r.Fail("item", err)
	}
	resp.Status = r.Uint16("status")
	if err := r.Err(); err != nil {
		return AddResponse{}, err
	}
	return resp, nil
}

// DecodeGetResponse decodes the get response body. The item list is keyed by
// item id; one bad item fails the whole response.
func DecodeGetResponse(raw json.RawMessage) (GetResponse, error) {
	r := wire.NewRecord("get response", raw)
	resp := GetResponse{
		Items:    readSeq(r, "list", DecodeItem),
		Status:   r.Uint16("status"),
		Complete: r.Bool("complete"),
		Error:    r.OptString("error"),
		Since:    r.Time("since"),
	}
	if err := r.Err(); err != nil {
		return GetResponse{}, err
	}
	return resp, nil
}

// DecodeSendResponse decodes the send response body and checks that exactly
// one result came back per submitted action.
func DecodeSendResponse(raw json.RawMessage, submitted int) (SendResponse, error) {
	r := wire.NewRecord("send response", raw)
	resp := SendResponse{Status: r.Uint16("status")}
	results := r.Raw("action_results")
	if r.Err() == nil {
		var elems []json.RawMessage
		if err := json.Unmarshal(results, &elems); err != nil || elems == nil {
			r.Fail("action_results", &wire.FieldError{Field: "action_results", Raw: string(results), Err: wire.ErrUnexpectedShape})
		} else if len(elems) != submitted {
			r.Fail("action_results", &wire.FieldError{
				Field: "action_results",
				Raw:   string(results),
				Err:   fmt.Errorf("%w: %d results for %d actions", wire.ErrUnexpectedShape, len(elems), submitted),
			})
		} else {
			resp.ActionResults = make([]bool, 0, len(elems))
			for i, e := range elems {
				ok, err := wire.Flag(fmt.Sprintf("action_results[%d]", i), e)
				if err != nil {
					r.Fail("action_results", err)
					break
				}
				resp.ActionResults = append(resp.ActionResults, ok)
			}
		}
	}
	if err := r.Err(); err != nil {
		return SendResponse{}, err
	}
	return resp, nil
}
