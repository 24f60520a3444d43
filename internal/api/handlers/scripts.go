package handlers

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ismaelloveexcel/creatorstudio/internal/models"
	"github.com/ismaelloveexcel/creatorstudio/internal/studio"
	"github.com/ismaelloveexcel/creatorstudio/pkg/textextract"
)

const maxImportSize = 10 << 20 // 10 MB

type ScriptHandler struct {
	svc   *studio.ScriptService
	guard *Guard
}

func NewScriptHandler(svc *studio.ScriptService, guard *Guard) *ScriptHandler {
	return &ScriptHandler{svc: svc, guard: guard}
}

func (h *ScriptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req studio.CreateScriptRequest
	if !h.guard.DecodeChecked(w, r, "script", &req) {
		return
	}

	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title required"})
		return
	}

	script, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, script)
}

func (h *ScriptHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	scripts, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"scripts": scripts, "count": len(scripts)})
}

func (h *ScriptHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid script ID"})
		return
	}

	script, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeNotFoundOr500(w, err, "script")
		return
	}

	writeJSON(w, http.StatusOK, script)
}

func (h *ScriptHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid script ID"})
		return
	}

	var req studio.UpdateScriptRequest
	if !h.guard.DecodeChecked(w, r, "script", &req) {
		return
	}

	script, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeNotFoundOr500(w, err, "script")
		return
	}

	writeJSON(w, http.StatusOK, script)
}

func (h *ScriptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid script ID"})
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "script not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Import accepts a multipart upload of a PDF or plain-text script, extracts
// its text, and creates a draft with the file content as a single step. The
// extracted text goes through the same moderation gate as typed input.
func (h *ScriptHandler) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "file required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportSize))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "could not read file"})
		return
	}

	ext := filepath.Ext(header.Filename)
	extracted, err := textextract.Extract(bytes.NewReader(data), int64(len(data)), ext)
	if err != nil {
		writeJSON(w, http.StatusUnsupportedMediaType, map[string]string{"error": err.Error()})
		return
	}

	title := strings.TrimSuffix(header.Filename, ext)
	if t := r.FormValue("title"); t != "" {
		title = t
	}

	payload := map[string]interface{}{"title": title, "content": extracted.Content}
	if !h.guard.CheckValue(w, r, "script", payload) {
		return
	}

	script, err := h.svc.Create(r.Context(), studio.CreateScriptRequest{
		Title: title,
		Steps: []models.ScriptStep{{Heading: "Imported", Content: extracted.Content}},
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"script": script, "pages": extracted.Pages})
}
