package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

type GeminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Models() []string {
	return []string{
		"gemini-2.0-flash", "gemini-2.0-flash-lite", "gemini-1.5-pro", "gemini-1.5-flash",
	}
}

func (p *GeminiProvider) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	start := time.Now()

	model := req.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	var systemParts []*genai.Part
	var prompt string
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			systemParts = append(systemParts, &genai.Part{Text: m.Content})
		default:
			if prompt != "" {
				prompt += "\n"
			}
			prompt += m.Content
		}
	}

	cfg := &genai.GenerateContentConfig{}
	if len(systemParts) > 0 {
		cfg.SystemInstruction = &genai.Content{Parts: systemParts, Role: "system"}
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		cfg.Temperature = &temp
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.TopP > 0 {
		topP := float32(req.TopP)
		cfg.TopP = &topP
	}
	if len(req.Stop) > 0 {
		cfg.StopSequences = req.Stop
	}

	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini chat: %w", err)
	}

	content := result.Text()
	if content == "" {
		return nil, fmt.Errorf("gemini chat: no completions returned")
	}

	resp := &ChatResponse{
		ID:        fmt.Sprintf("gemini-%d", time.Now().UnixNano()),
		Provider:  "gemini",
		Model:     model,
		Content:   content,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if result.UsageMetadata != nil {
		resp.InputTokens = int(result.UsageMetadata.PromptTokenCount)
		resp.OutputTokens = int(result.UsageMetadata.CandidatesTokenCount)
		resp.TotalTokens = int(result.UsageMetadata.TotalTokenCount)
	}
	return resp, nil
}

func (p *GeminiProvider) GenerateEmbedding(_ context.Context, _ EmbeddingRequest) (*EmbeddingResponse, error) {
	return nil, ErrEmbeddingsUnsupported
}
