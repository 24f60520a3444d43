package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ismaelloveexcel/creatorstudio/internal/aigen"
)

func newOfflineGenerateHandler() *GenerateHandler {
	return NewGenerateHandler(aigen.NewService(nil, "", nil))
}

func TestGenerateStatusDisabled(t *testing.T) {
	h := newOfflineGenerateHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/generate/status", nil)
	h.Status(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var status aigen.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.Enabled)
	assert.Empty(t, status.Model)
}

func TestGenerateDescriptionFallback(t *testing.T) {
	h := newOfflineGenerateHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/description",
		strings.NewReader(`{"topic":"slime experiments"}`))
	h.Description(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["description"], "slime experiments")
}

func TestGenerateDescriptionMissingTopic(t *testing.T) {
	h := newOfflineGenerateHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/description",
		strings.NewReader(`{}`))
	h.Description(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "topic required")
}

func TestGenerateTagsFallback(t *testing.T) {
	h := newOfflineGenerateHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/tags",
		strings.NewReader(`{"topic":"minecraft"}`))
	h.Tags(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tags []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Tags, "minecraft")
	assert.Contains(t, body.Tags, "kids")
}

func TestGenerateIdeasFallback(t *testing.T) {
	h := newOfflineGenerateHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/ideas",
		strings.NewReader(`{"category":"gaming"}`))
	h.Ideas(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Ideas []string `json:"ideas"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Ideas)
}
