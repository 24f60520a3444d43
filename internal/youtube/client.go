// Package youtube integrates the creator's YouTube channel: the OAuth code
// exchange, token refresh, and a read-only channel profile fetch. The client
// is built once at startup from config and injected where needed.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ismaelloveexcel/creatorstudio/internal/config"
)

// ErrNotConfigured is returned when no client credentials are set; the
// handlers translate it into a "connect YouTube later" response instead of
// an error page.
var ErrNotConfigured = errors.New("youtube integration not configured")

const (
	authEndpoint     = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenEndpoint    = "https://oauth2.googleapis.com/token"
	channelsEndpoint = "https://www.googleapis.com/youtube/v3/channels"

	scopeReadonly = "https://www.googleapis.com/auth/youtube.readonly"
)

type Client struct {
	cfg        config.YouTubeConfig
	httpClient *http.Client

	// endpoint overrides for tests
	tokenURL    string
	channelsURL string
}

func NewClient(cfg config.YouTubeConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokenURL:    tokenEndpoint,
		channelsURL: channelsEndpoint,
	}
}

// Enabled reports whether OAuth credentials are configured.
func (c *Client) Enabled() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != "" && c.cfg.RedirectURL != ""
}

// AuthURL builds the consent-screen URL the browser is sent to. state is
// echoed back on the callback for CSRF protection.
func (c *Client) AuthURL(state string) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}

	q := url.Values{}
	q.Set("client_id", c.cfg.ClientID)
	q.Set("redirect_uri", c.cfg.RedirectURL)
	q.Set("response_type", "code")
	q.Set("scope", scopeReadonly)
	q.Set("access_type", "offline")
	q.Set("state", state)

	return authEndpoint + "?" + q.Encode(), nil
}

// Token is the result of a code exchange or refresh. RefreshToken is empty
// on refresh responses.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// ExchangeCode trades an authorization code for tokens.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("redirect_uri", c.cfg.RedirectURL)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)

	return c.tokenRequest(ctx, form)
}

// Refresh obtains a fresh access token from a refresh token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	return c.tokenRequest(ctx, form)
}

func (c *Client) tokenRequest(ctx context.Context, form url.Values) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var oauthErr struct {
			Error       string `json:"error"`
			Description string `json:"error_description"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&oauthErr)
		return nil, fmt.Errorf("token exchange failed (%d): %s %s", resp.StatusCode, oauthErr.Error, oauthErr.Description)
	}

	var token Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("token exchange: empty access token")
	}
	return &token, nil
}

// ChannelStats holds the numbers shown on the dashboard.
type ChannelStats struct {
	Subscribers int64 `json:"subscribers"`
	Views       int64 `json:"views"`
	Videos      int64 `json:"videos"`
}

// Channel is the creator's own channel profile.
type Channel struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Stats ChannelStats `json:"stats"`
}

type channelsResp struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
			ViewCount       string `json:"viewCount"`
			VideoCount      string `json:"videoCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// Channel fetches the authenticated creator's channel profile.
func (c *Client) Channel(ctx context.Context, accessToken string) (*Channel, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.channelsURL+"?part=snippet,statistics&mine=true", nil)
	if err != nil {
		return nil, fmt.Errorf("channel request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch channel: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch channel failed: status %d", resp.StatusCode)
	}

	var body channelsResp
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode channel: %w", err)
	}
	if len(body.Items) == 0 {
		return nil, fmt.Errorf("no channel found for token")
	}

	item := body.Items[0]
	return &Channel{
		ID:    item.ID,
		Title: item.Snippet.Title,
		Stats: ChannelStats{
			Subscribers: parseCount(item.Statistics.SubscriberCount),
			Views:       parseCount(item.Statistics.ViewCount),
			Videos:      parseCount(item.Statistics.VideoCount),
		},
	}, nil
}

// parseCount tolerates the string-typed counters the Data API returns.
func parseCount(s string) int64 {
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int64(r-'0')
	}
	return n
}
