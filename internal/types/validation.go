package types

import (
	"errors"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotAuthorized is returned when an operation needs an access token and
// the session has none.
var ErrNotAuthorized = errors.New("no access token: authorize first")

// ErrNoPendingCode is returned when authorization is completed without a
// request token from a prior auth URL call.
var ErrNoPendingCode = errors.New("no pending request token: request an auth URL first")

// ------------------------------
// Validation
// ------------------------------
//
// Checks run before anything is sent; the service stays the authority on
// everything else.

// Validate checks that the session can make authenticated calls.
func (c Credentials) Validate() error {
	if c.AccessToken == "" {
		return ErrNotAuthorized
	}
	return validation.ValidateStruct(&c,
		validation.Field(&c.ConsumerKey, validation.Required),
	)
}

// Validate checks the URL being saved. Only an empty URL is rejected; the
// service decides what it can resolve.
func (r AddRequest) Validate() error {
	if err := r.Credentials.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL, validation.Required),
	)
}

func (a TagsAction) Validate() error {
	return validation.Validate(a.tags, validation.Required.Error("tags cannot be blank"))
}

func (a TagRenameAction) Validate() error {
	return validation.Errors{
		"old_tag": validation.Validate(a.oldTag, validation.Required),
		"new_tag": validation.Validate(a.newTag, validation.Required),
	}.Filter()
}

// ValidateActions runs Validate on every action that has one and reports the
// first failure with its batch position.
func ValidateActions(actions []Action) error {
	for i, a := range actions {
		if a == nil {
			return validation.Errors{strconv.Itoa(i): errors.New("nil action")}
		}
		if v, ok := a.(validation.Validatable); ok {
			if err := v.Validate(); err != nil {
				return validation.Errors{strconv.Itoa(i): err}
			}
		}
	}
	return nil
}
