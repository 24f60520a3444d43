// Package aigen generates video descriptions, tags, thumbnail concepts, and
// content ideas. With no provider configured it degrades to deterministic
// offline generators, so the app stays usable without any API key.
package aigen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ismaelloveexcel/creatorstudio/internal/cache"
	"github.com/ismaelloveexcel/creatorstudio/internal/llm"
)

const (
	cacheTTL     = time.Hour
	systemPrompt = "You write upbeat, kid-friendly YouTube content for a young creator. " +
		"Keep everything positive, simple, and safe for all ages. Never include links or hashtags unless asked."
)

type Service struct {
	gateway llm.Gateway // nil means generation is disabled
	model   string
	cache   *cache.Cache // optional
}

// NewService builds the generation service. gw may be nil (no provider
// configured) and c may be nil (no redis); both degrade gracefully.
//
// TODO: topic strings are passed through unmoderated, mirroring the current
// product behavior. Route them through moderation.Filter once product signs
// off on the behavior change.
func NewService(gw llm.Gateway, model string, c *cache.Cache) *Service {
	return &Service{gateway: gw, model: model, cache: c}
}

// Status reports whether a real provider backs generation. When disabled,
// callers still get deterministic fallback output.
type Status struct {
	Enabled bool   `json:"enabled"`
	Model   string `json:"model,omitempty"`
}

func (s *Service) Status() Status {
	if s.gateway == nil {
		return Status{Enabled: false}
	}
	return Status{Enabled: true, Model: s.model}
}

func (s *Service) GenerateDescription(ctx context.Context, topic string) (string, error) {
	key := "aigen:desc:" + topic
	var cached string
	if s.cached(ctx, key, &cached) {
		return cached, nil
	}

	if s.gateway == nil {
		return FallbackDescription(topic), nil
	}

	resp, err := s.chat(ctx, fmt.Sprintf(
		"Write a short, exciting YouTube video description (2-3 sentences) for a video about: %s", topic))
	if err != nil {
		slog.Warn("description generation failed, using fallback", "error", err)
		return FallbackDescription(topic), nil
	}

	out := strings.TrimSpace(resp)
	s.store(ctx, key, out)
	return out, nil
}

func (s *Service) GenerateTags(ctx context.Context, topic string) ([]string, error) {
	key := "aigen:tags:" + topic
	var cached []string
	if s.cached(ctx, key, &cached) {
		return cached, nil
	}

	if s.gateway == nil {
		return FallbackTags(topic), nil
	}

	resp, err := s.chat(ctx, fmt.Sprintf(
		"List 8 short YouTube tags for a video about: %s. One tag per line, no numbering, no # symbols.", topic))
	if err != nil {
		slog.Warn("tag generation failed, using fallback", "error", err)
		return FallbackTags(topic), nil
	}

	tags := splitLines(resp, 8)
	if len(tags) == 0 {
		return FallbackTags(topic), nil
	}
	s.store(ctx, key, tags)
	return tags, nil
}

func (s *Service) GenerateThumbnailIdeas(ctx context.Context, topic string) ([]string, error) {
	key := "aigen:thumbs:" + topic
	var cached []string
	if s.cached(ctx, key, &cached) {
		return cached, nil
	}

	if s.gateway == nil {
		return FallbackThumbnailIdeas(topic), nil
	}

	resp, err := s.chat(ctx, fmt.Sprintf(
		"Suggest 4 bold, clickable thumbnail concepts for a video about: %s. One concept per line, each under 10 words.", topic))
	if err != nil {
		slog.Warn("thumbnail generation failed, using fallback", "error", err)
		return FallbackThumbnailIdeas(topic), nil
	}

	ideas := splitLines(resp, 4)
	if len(ideas) == 0 {
		return FallbackThumbnailIdeas(topic), nil
	}
	s.store(ctx, key, ideas)
	return ideas, nil
}

func (s *Service) GenerateContentIdeas(ctx context.Context, category string) ([]string, error) {
	key := "aigen:ideas:" + category
	var cached []string
	if s.cached(ctx, key, &cached) {
		return cached, nil
	}

	if s.gateway == nil {
		return FallbackContentIdeas(category), nil
	}

	subject := "any topic a young creator would love"
	if category != "" {
		subject = category
	}
	resp, err := s.chat(ctx, fmt.Sprintf(
		"Suggest 5 fun short-form video ideas about %s. One idea per line, no numbering.", subject))
	if err != nil {
		slog.Warn("idea generation failed, using fallback", "error", err)
		return FallbackContentIdeas(category), nil
	}

	ideas := splitLines(resp, 5)
	if len(ideas) == 0 {
		return FallbackContentIdeas(category), nil
	}
	s.store(ctx, key, ideas)
	return ideas, nil
}

func (s *Service) chat(ctx context.Context, prompt string) (string, error) {
	resp, err := s.gateway.Chat(ctx, llm.ChatRequest{
		Model: s.model,
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.8,
		MaxTokens:   400,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

func (s *Service) cached(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	return s.cache.Get(ctx, key, dest) == nil
}

func (s *Service) store(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, cacheTTL); err != nil {
		slog.Debug("generation cache write failed", "key", key, "error", err)
	}
}

// splitLines turns model output into a clean list, dropping list markers
// and blank lines.
func splitLines(text string, max int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789. ")
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == max {
			break
		}
	}
	return out
}
