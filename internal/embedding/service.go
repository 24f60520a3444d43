package embedding

import (
	"context"
	"fmt"

	"github.com/ismaelloveexcel/creatorstudio/internal/llm"
)

// Service embeds idea text for similarity search. Provider is pinned at
// construction because not every chat provider exposes embeddings.
type Service struct {
	gateway  llm.Gateway
	provider string
	model    string
}

func NewService(gw llm.Gateway, provider, model string) *Service {
	return &Service{gateway: gw, provider: provider, model: model}
}

func (s *Service) Enabled() bool {
	if s.gateway == nil || s.provider == "" {
		return false
	}
	_, err := s.gateway.Provider(s.provider)
	return err == nil
}

func (s *Service) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("embedding service not configured")
	}

	resp, err := s.gateway.Embed(ctx, llm.EmbeddingRequest{
		Provider: s.provider,
		Model:    s.model,
		Input:    []string{text},
	})
	if err != nil {
		return nil, fmt.Errorf("embed text: %w", err)
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("embed text: empty response")
	}
	return resp.Embeddings[0], nil
}
