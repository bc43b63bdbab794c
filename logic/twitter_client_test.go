package logic_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"twitter_webview/logic"
	"twitter_webview/shared"
)

func newTestClient(ctrl *gomock.Controller, handler http.HandlerFunc) (logic.ITwitterClient, *httptest.Server) {
	sc := newScaffold(ctrl)
	srv := httptest.NewServer(handler)
	cfg := &shared.Config{
		ApiBaseUrl:        srv.URL + "/1.1",
		RequestTimeoutSec: 5,
		Secrets: shared.Secrets{
			ConsumerKey:       "ck",
			ConsumerSecret:    "cs",
			AccessToken:       "at",
			AccessTokenSecret: "ats",
		},
	}
	return logic.NewTwitterClient(cfg, sc.logger, sc.metrics, shared.NewUserAgent()), srv
}

func TestClientSignsAndBuildsUrl(t *testing.T) {
	ctrl := gomock.NewController(t)
	client, srv := newTestClient(ctrl, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/1.1/statuses/home_timeline.json", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("count"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "OAuth "))
		assert.Contains(t, r.Header.Get("Authorization"), `oauth_consumer_key="ck"`)
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "Twitter-Webview/"))
		_, _ = w.Write([]byte(`[{"id_str":"1"}]`))
	})
	defer srv.Close()

	raw, err := client.Get(context.Background(), "statuses/home_timeline", url.Values{"count": {"5"}})
	assert.Nil(t, err)
	assert.JSONEq(t, `[{"id_str":"1"}]`, string(raw))
}

func TestClientPostsForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	client, srv := newTestClient(ctrl, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/1.1/statuses/update.json", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(body))
		assert.Equal(t, "hello world", form.Get("status"))
		_, _ = w.Write([]byte(`{"id_str":"2","full_text":"hello world"}`))
	})
	defer srv.Close()

	raw, err := client.Post(context.Background(), "statuses/update", url.Values{"status": {"hello world"}})
	assert.Nil(t, err)
	assert.Contains(t, string(raw), `"id_str":"2"`)
}

func TestClientJoinsRemoteErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	client, srv := newTestClient(ctrl, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errors":[{"code":187,"message":"Status is a duplicate."},{"code":88,"message":"Rate limit exceeded"}]}`))
	})
	defer srv.Close()

	_, err := client.Post(context.Background(), "statuses/update", url.Values{"status": {"again"}})
	assert.EqualError(t, err, "Status is a duplicate.; Rate limit exceeded")
	var remoteErr *logic.RemoteError
	if assert.True(t, errors.As(err, &remoteErr)) {
		assert.Equal(t, http.StatusForbidden, remoteErr.Status)
	}
}

func TestClientErrorWithoutBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	client, srv := newTestClient(ctrl, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer srv.Close()

	_, err := client.Get(context.Background(), "statuses/mentions_timeline", nil)
	assert.EqualError(t, err, "request failed with status 502")
}
