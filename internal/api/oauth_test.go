package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	clierr "github.com/mycelian/readlater/client/internal/errors"
	"github.com/mycelian/readlater/client/internal/types"
)

func TestRequestToken_Success(t *testing.T) {
	t.Parallel()
	srv, got := stubServer(t, http.StatusOK, nil, `{"code":"dcba4321","state":null}`)
	resp, err := RequestToken(context.Background(), srv.Client(), srv.URL, types.OAuthRequest{ConsumerKey: "ck", RedirectURI: "app:done"})
	if err != nil || resp == nil || resp.Code != "dcba4321" {
		t.Fatalf("RequestToken unexpected: got=%+v err=%v", resp, err)
	}
	if got.path != PathRequestToken {
		t.Fatalf("path = %s", got.path)
	}
	if ct := got.header.Get("Content-Type"); ct != "application/json; charset=UTF-8" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if xa := got.header.Get("X-Accept"); xa != "application/json" {
		t.Fatalf("X-Accept = %q", xa)
	}
	if got.body != `{"consumer_key":"ck","redirect_uri":"app:done"}` {
		t.Fatalf("body = %s", got.body)
	}
}

func TestAuthorize_Success(t *testing.T) {
	t.Parallel()
	srv, got := stubServer(t, http.StatusOK, nil, `{"access_token":"tok","username":"pocketuser"}`)
	resp, err := Authorize(context.Background(), srv.Client(), srv.URL, types.AuthorizeRequest{ConsumerKey: "ck", Code: "c0de"})
	if err != nil || resp.AccessToken != "tok" || resp.Username != "pocketuser" {
		t.Fatalf("Authorize unexpected: got=%+v err=%v", resp, err)
	}
	if got.path != PathAuthorize || got.body != `{"consumer_key":"ck","code":"c0de"}` {
		t.Fatalf("unexpected request %s %s", got.path, got.body)
	}
}

func TestAuthorize_NoCode(t *testing.T) {
	t.Parallel()
	srv, got := stubServer(t, http.StatusOK, nil, `{}`)
	_, err := Authorize(context.Background(), srv.Client(), srv.URL, types.AuthorizeRequest{ConsumerKey: "ck"})
	if !errors.Is(err, types.ErrNoPendingCode) || !clierr.Is(err, clierr.Encode) {
		t.Fatalf("expected Encode(ErrNoPendingCode), got %v", err)
	}
	if got.path != "" {
		t.Fatalf("no request should have been sent")
	}
}

func TestAuthorize_DeniedByUser(t *testing.T) {
	t.Parallel()
	srv, _ := stubServer(t, http.StatusForbidden, map[string]string{
		"X-Error-Code": "158",
		"X-Error":      "User rejected code.",
	}, "")
	_, err := Authorize(context.Background(), srv.Client(), srv.URL, types.AuthorizeRequest{ConsumerKey: "ck", Code: "c"})
	var e *clierr.Error
	if !errors.As(err, &e) || e.Kind != clierr.Protocol || e.Code != 158 || e.Message != "User rejected code." {
		t.Fatalf("expected Protocol(158), got %v", err)
	}
}

func TestAuthorizeURL(t *testing.T) {
	t.Parallel()
	u, err := AuthorizeURL("https://getpocket.com/auth/authorize", "c0de", "app:done")
	if err != nil {
		t.Fatalf("AuthorizeURL error: %v", err)
	}
	want := "https://getpocket.com/auth/authorize?redirect_uri=app%3Adone&request_token=c0de"
	if u.String() != want {
		t.Fatalf("AuthorizeURL = %s, want %s", u, want)
	}
	if _, err := AuthorizeURL("://bad", "c", "r"); !clierr.Is(err, clierr.Encode) {
		t.Fatalf("expected Encode error, got %v", err)
	}
}
