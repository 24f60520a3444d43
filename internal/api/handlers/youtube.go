package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ismaelloveexcel/creatorstudio/internal/cache"
	"github.com/ismaelloveexcel/creatorstudio/internal/youtube"
)

const channelCacheTTL = 5 * time.Minute

type YouTubeHandler struct {
	client *youtube.Client
	cache  *cache.Cache
}

func NewYouTubeHandler(client *youtube.Client, c *cache.Cache) *YouTubeHandler {
	return &YouTubeHandler{client: client, cache: c}
}

// AuthURL returns the Google consent URL. The state token is random per
// request; the frontend round-trips it through the OAuth redirect.
func (h *YouTubeHandler) AuthURL(w http.ResponseWriter, r *http.Request) {
	state := randomState()
	authURL, err := h.client.AuthURL(state)
	if err != nil {
		h.writeClientErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"auth_url": authURL, "state": state})
}

func (h *YouTubeHandler) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "code required"})
		return
	}

	token, err := h.client.ExchangeCode(r.Context(), code)
	if err != nil {
		h.writeClientErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, token)
}

func (h *YouTubeHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "refresh_token required"})
		return
	}

	token, err := h.client.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.writeClientErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, token)
}

// Channel proxies the creator's channel profile and stats. The access token
// comes in the X-YouTube-Token header so the standard Authorization header
// stays free for API auth.
func (h *YouTubeHandler) Channel(w http.ResponseWriter, r *http.Request) {
	accessToken := strings.TrimSpace(r.Header.Get("X-YouTube-Token"))
	if accessToken == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "X-YouTube-Token header required"})
		return
	}

	cacheKey := "youtube:channel:" + accessToken[:min(16, len(accessToken))]
	if h.cache != nil {
		var channel youtube.Channel
		if err := h.cache.Get(r.Context(), cacheKey, &channel); err == nil {
			writeJSON(w, http.StatusOK, channel)
			return
		}
	}

	channel, err := h.client.Channel(r.Context(), accessToken)
	if err != nil {
		h.writeClientErr(w, err)
		return
	}

	if h.cache != nil {
		h.cache.Set(r.Context(), cacheKey, channel, channelCacheTTL)
	}

	writeJSON(w, http.StatusOK, channel)
}

func (h *YouTubeHandler) writeClientErr(w http.ResponseWriter, err error) {
	if errors.Is(err, youtube.ErrNotConfigured) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "youtube integration not configured"})
		return
	}
	writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
}

func randomState() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
