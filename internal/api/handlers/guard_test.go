package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ismaelloveexcel/creatorstudio/internal/moderation"
)

func newTestGuard() *Guard {
	return &Guard{Filter: moderation.NewFilter()}
}

func TestDecodeCheckedCleanBody(t *testing.T) {
	guard := newTestGuard()

	var dest struct {
		Title string `json:"title"`
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scripts",
		strings.NewReader(`{"title":"My epic minecraft build"}`))

	ok := guard.DecodeChecked(rec, req, "script", &dest)

	assert.True(t, ok)
	assert.Equal(t, "My epic minecraft build", dest.Title)
}

func TestDecodeCheckedRejectsInjection(t *testing.T) {
	guard := newTestGuard()

	var dest struct {
		Title string `json:"title"`
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scripts",
		strings.NewReader(`{"title":"<script>alert(1)</script>"}`))

	ok := guard.DecodeChecked(rec, req, "script", &dest)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error     string `json:"error"`
		Moderated bool   `json:"moderated"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, moderation.RejectionMessage, body.Error)
	assert.True(t, body.Moderated)
	assert.Empty(t, dest.Title, "rejected payload must not be decoded")
}

func TestDecodeCheckedRejectsNestedField(t *testing.T) {
	guard := newTestGuard()

	var dest struct {
		Title string `json:"title"`
		Steps []struct {
			Content string `json:"content"`
		} `json:"steps"`
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scripts",
		strings.NewReader(`{"title":"Fine title","steps":[{"content":"you stupid idiot"}]}`))

	ok := guard.DecodeChecked(rec, req, "script", &dest)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecodeCheckedInvalidJSON(t *testing.T) {
	guard := newTestGuard()

	var dest struct{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scripts",
		strings.NewReader(`{not json`))

	ok := guard.DecodeChecked(rec, req, "script", &dest)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestCheckValueCleanMap(t *testing.T) {
	guard := newTestGuard()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scripts/import", nil)

	ok := guard.CheckValue(rec, req, "script", map[string]interface{}{
		"title":   "Imported script",
		"content": "Welcome back everyone, today we build a castle.",
	})

	assert.True(t, ok)
}
