package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/ismaelloveexcel/creatorstudio/internal/api/middleware"
	"github.com/ismaelloveexcel/creatorstudio/internal/audit"
	"github.com/ismaelloveexcel/creatorstudio/internal/moderation"
	"github.com/ismaelloveexcel/creatorstudio/internal/studio"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeNotFoundOr500(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, studio.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": what + " not found"})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func statusStr(code int) string {
	if code == http.StatusOK {
		return "ok"
	}
	return "unhealthy"
}

// Guard is the moderation gate every write handler passes user content
// through. A rejected payload is never persisted; the client gets the fixed
// friendly message and the rejection is recorded for review.
type Guard struct {
	Filter *moderation.Filter
	Events *audit.Service
}

// DecodeChecked reads the request body once, decodes it into dest, and runs
// every string field through the moderation filter. On rejection it writes
// the 400 response, logs the event, and returns false.
func (g *Guard) DecodeChecked(w http.ResponseWriter, r *http.Request, resourceType string, dest interface{}) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "could not read request body"})
		return false
	}

	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}

	if !g.CheckValue(w, r, resourceType, raw) {
		return false
	}

	if err := json.Unmarshal(body, dest); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

// CheckValue gates an already-decoded JSON-like value. Used by handlers
// whose input arrives outside a JSON body, such as file imports.
func (g *Guard) CheckValue(w http.ResponseWriter, r *http.Request, resourceType string, v interface{}) bool {
	res := g.Filter.CheckObject(v)
	if res.IsClean {
		return true
	}

	g.recordRejection(r, resourceType, v)

	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":     res.ErrorMessage,
		"moderated": true,
	})
	return false
}

func (g *Guard) recordRejection(r *http.Request, resourceType string, v interface{}) {
	if g.Events == nil {
		return
	}

	// Re-run per string to get the reason tags for the event log; the
	// response itself stays generic.
	batch := g.Filter.CheckTexts(moderation.Strings(v))
	reasonSet := map[string]bool{}
	for _, res := range batch.Results {
		for _, reason := range res.BlockedReasons {
			reasonSet[reason] = true
		}
	}
	reasons := make([]string, 0, len(reasonSet))
	for reason := range reasonSet {
		reasons = append(reasons, reason)
	}

	event := audit.Event{
		ResourceType: resourceType,
		Reasons:      reasons,
		Details:      map[string]interface{}{"path": r.URL.Path, "method": r.Method},
		IPAddress:    middleware.ClientIP(r),
	}

	// Recording is best effort; a failed insert must not mask the 400.
	if err := g.Events.LogRejection(context.WithoutCancel(r.Context()), event); err != nil {
		slog.Error("failed to record moderation event", "error", err)
	}
}
