package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/ismaelloveexcel/creatorstudio/internal/embedding"
	"github.com/ismaelloveexcel/creatorstudio/internal/queue"
	"github.com/ismaelloveexcel/creatorstudio/internal/studio"
	"github.com/ismaelloveexcel/creatorstudio/internal/vectorstore"
)

// EmbedWorker computes an embedding for an idea's title and description and
// stores it so the idea shows up in similarity lookups.
type EmbedWorker struct {
	ideas    *studio.IdeaService
	embedder *embedding.Service
	store    *vectorstore.IdeaStore
}

func NewEmbedWorker(ideas *studio.IdeaService, embedder *embedding.Service, store *vectorstore.IdeaStore) *EmbedWorker {
	return &EmbedWorker{ideas: ideas, embedder: embedder, store: store}
}

func (w *EmbedWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.IdeaEmbedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	ideaID, err := uuid.Parse(payload.IdeaID)
	if err != nil {
		return fmt.Errorf("parse idea ID: %w", err)
	}

	if !w.embedder.Enabled() {
		slog.Info("embedding provider not configured, skipping", "idea_id", ideaID)
		return nil
	}

	idea, err := w.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return fmt.Errorf("get idea: %w", err)
	}

	text := strings.TrimSpace(idea.Title + "\n" + idea.Description)
	vec, err := w.embedder.EmbedText(ctx, text)
	if err != nil {
		return fmt.Errorf("embed idea text: %w", err)
	}

	if err := w.store.Upsert(ctx, ideaID, vec); err != nil {
		return fmt.Errorf("store embedding: %w", err)
	}

	slog.Info("idea embedded", "idea_id", ideaID, "dimensions", len(vec))
	return nil
}
