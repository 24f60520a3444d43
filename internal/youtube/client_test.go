package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ismaelloveexcel/creatorstudio/internal/config"
)

func testConfig() config.YouTubeConfig {
	return config.YouTubeConfig{
		ClientID:     "cid",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/api/v1/youtube/callback",
	}
}

func TestUnconfiguredClient(t *testing.T) {
	c := NewClient(config.YouTubeConfig{})

	assert.False(t, c.Enabled())

	_, err := c.AuthURL("state")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.ExchangeCode(context.Background(), "code")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.Refresh(context.Background(), "rt")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.Channel(context.Background(), "at")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestAuthURL(t *testing.T) {
	c := NewClient(testConfig())

	u, err := c.AuthURL("xyz")
	require.NoError(t, err)
	assert.Contains(t, u, "accounts.google.com")
	assert.Contains(t, u, "client_id=cid")
	assert.Contains(t, u, "state=xyz")
	assert.Contains(t, u, "youtube.readonly")
}

func TestExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.Form.Get("grant_type"))
		assert.Equal(t, "the-code", r.Form.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at","refresh_token":"rt","expires_in":3600,"token_type":"Bearer"}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig())
	c.tokenURL = srv.URL

	token, err := c.ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "at", token.AccessToken)
	assert.Equal(t, "rt", token.RefreshToken)
	assert.Equal(t, 3600, token.ExpiresIn)
}

func TestExchangeCodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant","error_description":"Bad code"}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig())
	c.tokenURL = srv.URL

	_, err := c.ExchangeCode(context.Background(), "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "rt", r.Form.Get("refresh_token"))

		w.Write([]byte(`{"access_token":"fresh","expires_in":3600}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig())
	c.tokenURL = srv.URL

	token, err := c.Refresh(context.Background(), "rt")
	require.NoError(t, err)
	assert.Equal(t, "fresh", token.AccessToken)
	assert.Empty(t, token.RefreshToken)
}

func TestChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at", r.Header.Get("Authorization"))
		assert.Equal(t, "true", r.URL.Query().Get("mine"))

		w.Write([]byte(`{"items":[{"id":"UC123","snippet":{"title":"Aidan's Adventures"},
			"statistics":{"subscriberCount":"1200","viewCount":"50000","videoCount":"42"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig())
	c.channelsURL = srv.URL

	ch, err := c.Channel(context.Background(), "at")
	require.NoError(t, err)
	assert.Equal(t, "UC123", ch.ID)
	assert.Equal(t, "Aidan's Adventures", ch.Title)
	assert.Equal(t, int64(1200), ch.Stats.Subscribers)
	assert.Equal(t, int64(50000), ch.Stats.Views)
	assert.Equal(t, int64(42), ch.Stats.Videos)
}

func TestChannelNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig())
	c.channelsURL = srv.URL

	_, err := c.Channel(context.Background(), "at")
	assert.Error(t, err)
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, int64(1200), parseCount("1200"))
	assert.Equal(t, int64(0), parseCount(""))
	assert.Equal(t, int64(0), parseCount("n/a"))
}
