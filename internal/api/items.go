package api

import (
	"context"
	"encoding/json"

	clierr "github.com/mycelian/readlater/client/internal/errors"
	"github.com/mycelian/readlater/client/internal/types"
)

// AddItem saves a single URL to the reading list.
func AddItem(ctx context.Context, httpClient HTTPClient, baseURL string, req types.AddRequest) (*types.AddResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, clierr.NewEncodeError(OpAdd, err)
	}
	raw, err := post(ctx, httpClient, OpAdd, baseURL, PathAdd, req)
	if err != nil {
		return nil, err
	}
	return decode(OpAdd, raw, types.DecodeAddResponse)
}

// GetItems lists items matching the request filter.
func GetItems(ctx context.Context, httpClient HTTPClient, baseURL string, req types.GetRequest) (*types.GetResponse, error) {
	if err := req.Credentials.Validate(); err != nil {
		return nil, clierr.NewEncodeError(OpGet, err)
	}
	raw, err := post(ctx, httpClient, OpGet, baseURL, PathGet, req)
	if err != nil {
		return nil, err
	}
	return decode(OpGet, raw, types.DecodeGetResponse)
}

// SendActions submits a batch of actions. The response carries one result per
// action, in submission order; any other count is a Decode error.
func SendActions(ctx context.Context, httpClient HTTPClient, baseURL string, req types.SendRequest) (*types.SendResponse, error) {
	if err := req.Credentials.Validate(); err != nil {
		return nil, clierr.NewEncodeError(OpSend, err)
	}
	if err := types.ValidateActions(req.Actions); err != nil {
		return nil, clierr.NewEncodeError(OpSend, err)
	}
	raw, err := post(ctx, httpClient, OpSend, baseURL, PathSend, req)
	if err != nil {
		return nil, err
	}
	submitted := len(req.Actions)
	return decode(OpSend, raw, func(b json.RawMessage) (types.SendResponse, error) {
		return types.DecodeSendResponse(b, submitted)
	})
}
