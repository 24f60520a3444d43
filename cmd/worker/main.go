package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"

	"github.com/ismaelloveexcel/creatorstudio/internal/config"
	"github.com/ismaelloveexcel/creatorstudio/internal/database"
	"github.com/ismaelloveexcel/creatorstudio/internal/embedding"
	"github.com/ismaelloveexcel/creatorstudio/internal/llm"
	"github.com/ismaelloveexcel/creatorstudio/internal/queue"
	"github.com/ismaelloveexcel/creatorstudio/internal/queue/workers"
	"github.com/ismaelloveexcel/creatorstudio/internal/studio"
	"github.com/ismaelloveexcel/creatorstudio/internal/vectorstore"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPool(context.Background(), cfg.Database)
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	gateway := llm.NewGateway(cfg.AI)
	embedder := embedding.NewService(gateway, cfg.AI.EmbeddingProvider, cfg.AI.EmbeddingModel)

	ideas := studio.NewIdeaService(db)
	projects := studio.NewProjectService(db)
	vectors := vectorstore.NewIdeaStore(db)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	registry := queue.NewHandlersRegistry()

	embedWorker := workers.NewEmbedWorker(ideas, embedder, vectors)
	exportWorker := workers.NewExportWorker(projects)

	registry.Register(queue.TypeIdeaEmbed, asynq.HandlerFunc(embedWorker.ProcessTask))
	registry.Register(queue.TypeProjectExport, asynq.HandlerFunc(exportWorker.ProcessTask))

	slog.Info("starting worker", "concurrency", 10)
	if err := srv.Run(registry.Mux()); err != nil {
		slog.Error("worker error", "error", err)
		os.Exit(1)
	}
}
