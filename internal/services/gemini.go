package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiService is the boundary to the hosted generation capability.
// Free-text and schema-bound calls are kept separate because their
// failure handling differs: schema-bound payloads are still untrusted
// text that the response normalizer parses defensively.
type GeminiService interface {
	GenerateText(ctx context.Context, contents []*genai.Content, temperature float32) (string, error)
	GenerateJSON(ctx context.Context, contents []*genai.Content, schema *genai.Schema) (string, error)
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	embedModel string
}

func NewGeminiService(apiKey, modelName string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	return &geminiService{
		client:     client,
		modelName:  modelName,
		embedModel: "text-embedding-004",
	}, nil
}

// GenerateText implements GeminiService. An empty model reply maps to
// "" without error; only transport failures surface.
func (g *geminiService) GenerateText(ctx context.Context, contents []*genai.Content, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", newGenerationError("text", err)
	}
	if resp == nil {
		return "", newGenerationError("text", fmt.Errorf("nil response"))
	}

	return resp.Text(), nil
}

// GenerateJSON implements GeminiService. Schema-bound calls are always
// deterministic: temperature is pinned to 0 so identical input yields
// identical output.
func (g *geminiService) GenerateJSON(ctx context.Context, contents []*genai.Content, schema *genai.Schema) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(TemperatureDeterministic),
		MaxOutputTokens:  4096,
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", newGenerationError("json", err)
	}
	if resp == nil {
		return "", newGenerationError("json", fmt.Errorf("nil response"))
	}

	return resp.Text(), nil
}

// GenerateEmbedding implements GeminiService.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long (max ~10000 tokens for embedding)
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}
