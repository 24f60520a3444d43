package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/ismaelloveexcel/creatorstudio/internal/aigen"
	"github.com/ismaelloveexcel/creatorstudio/internal/api/handlers"
	"github.com/ismaelloveexcel/creatorstudio/internal/api/middleware"
	"github.com/ismaelloveexcel/creatorstudio/internal/audit"
	"github.com/ismaelloveexcel/creatorstudio/internal/auth"
	"github.com/ismaelloveexcel/creatorstudio/internal/cache"
	"github.com/ismaelloveexcel/creatorstudio/internal/config"
	"github.com/ismaelloveexcel/creatorstudio/internal/embedding"
	"github.com/ismaelloveexcel/creatorstudio/internal/llm"
	"github.com/ismaelloveexcel/creatorstudio/internal/moderation"
	"github.com/ismaelloveexcel/creatorstudio/internal/queue"
	"github.com/ismaelloveexcel/creatorstudio/internal/studio"
	"github.com/ismaelloveexcel/creatorstudio/internal/vectorstore"
	"github.com/ismaelloveexcel/creatorstudio/internal/youtube"
)

type Deps struct {
	Config *config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Queue  *queue.Client
}

// NewRouter wires every service and handler. The gateway may be nil when no
// AI provider is configured; generation then serves deterministic fallbacks.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config

	filterOpts := []moderation.Option{}
	if cfg.Production() {
		filterOpts = append(filterOpts, moderation.WithLogger(slog.Default()))
	}
	filter := moderation.NewFilter(filterOpts...)

	events := audit.NewService(deps.DB)
	guard := &handlers.Guard{Filter: filter, Events: events}

	var c *cache.Cache
	if deps.Redis != nil {
		c = cache.NewCache(deps.Redis)
	}

	gateway := llm.NewGateway(cfg.AI)
	genSvc := aigen.NewService(gateway, cfg.AI.DefaultModel, c)
	embedder := embedding.NewService(gateway, cfg.AI.EmbeddingProvider, cfg.AI.EmbeddingModel)

	scripts := studio.NewScriptService(deps.DB)
	ideas := studio.NewIdeaService(deps.DB)
	thumbnails := studio.NewThumbnailService(deps.DB)
	recordings := studio.NewRecordingService(deps.DB)
	projects := studio.NewProjectService(deps.DB)
	vectors := vectorstore.NewIdeaStore(deps.DB)

	ytClient := youtube.NewClient(cfg.YouTube)

	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Redis)
	scriptHandler := handlers.NewScriptHandler(scripts, guard)
	ideaHandler := handlers.NewIdeaHandler(ideas, guard, deps.Queue, embedder, vectors)
	thumbnailHandler := handlers.NewThumbnailHandler(thumbnails, guard)
	recordingHandler := handlers.NewRecordingHandler(recordings, guard)
	projectHandler := handlers.NewProjectHandler(projects, guard, deps.Queue)
	generateHandler := handlers.NewGenerateHandler(genSvc)
	youtubeHandler := handlers.NewYouTubeHandler(ytClient, c)
	moderationHandler := handlers.NewModerationHandler(filter)
	adminHandler := handlers.NewAdminHandler(events)

	jwtMw := auth.NewJWTMiddleware(cfg.Auth.JWTSecret)
	rateLimiter := middleware.NewRateLimiter(5, 10)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))

	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jwtMw.Authenticate)

		r.Route("/scripts", func(r chi.Router) {
			r.Post("/", scriptHandler.Create)
			r.Get("/", scriptHandler.List)
			r.Post("/import", scriptHandler.Import)
			r.Get("/{id}", scriptHandler.Get)
			r.Put("/{id}", scriptHandler.Update)
			r.Delete("/{id}", scriptHandler.Delete)
		})

		r.Route("/ideas", func(r chi.Router) {
			r.Post("/", ideaHandler.Create)
			r.Get("/", ideaHandler.List)
			r.Get("/{id}", ideaHandler.Get)
			r.Put("/{id}", ideaHandler.Update)
			r.Delete("/{id}", ideaHandler.Delete)
			r.Get("/{id}/similar", ideaHandler.Similar)
		})

		r.Route("/thumbnails", func(r chi.Router) {
			r.Post("/", thumbnailHandler.Create)
			r.Get("/", thumbnailHandler.List)
			r.Get("/{id}", thumbnailHandler.Get)
			r.Put("/{id}", thumbnailHandler.Update)
			r.Delete("/{id}", thumbnailHandler.Delete)
		})

		r.Route("/recordings", func(r chi.Router) {
			r.Post("/", recordingHandler.Create)
			r.Get("/", recordingHandler.List)
			r.Get("/{id}", recordingHandler.Get)
			r.Delete("/{id}", recordingHandler.Delete)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", projectHandler.Create)
			r.Get("/", projectHandler.List)
			r.Get("/{id}", projectHandler.Get)
			r.Put("/{id}", projectHandler.Update)
			r.Delete("/{id}", projectHandler.Delete)
			r.Post("/{id}/export", projectHandler.Export)
		})

		r.Route("/generate", func(r chi.Router) {
			r.Use(rateLimiter.Limit)
			r.Get("/status", generateHandler.Status)
			r.Post("/description", generateHandler.Description)
			r.Post("/tags", generateHandler.Tags)
			r.Post("/thumbnails", generateHandler.Thumbnails)
			r.Post("/ideas", generateHandler.Ideas)
		})

		r.Route("/youtube", func(r chi.Router) {
			r.Get("/auth-url", youtubeHandler.AuthURL)
			r.Get("/callback", youtubeHandler.Callback)
			r.Post("/refresh", youtubeHandler.Refresh)
			r.Get("/channel", youtubeHandler.Channel)
		})

		r.Post("/moderation/check", moderationHandler.Check)

		r.Get("/admin/moderation", adminHandler.ModerationEvents)
	})

	return r
}
