package index

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/model"
)

// OpenAIEmbedder calls an OpenAI-compatible embeddings endpoint
// (LM Studio, Ollama, or the real thing). The sentence-transformer models
// served locally use 384 dimensions.
type OpenAIEmbedder struct {
	client *openai.Client
	model  string
	dim    int
}

// NewOpenAIEmbedder creates a client for baseURL. An empty apiKey is fine
// for local servers.
func NewOpenAIEmbedder(baseURL, apiKey, modelName string, dim int) *OpenAIEmbedder {
	if apiKey == "" {
		apiKey = "not-needed"
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if dim <= 0 {
		dim = 384
	}
	return &OpenAIEmbedder{
		client: openai.NewClientWithConfig(cfg),
		model:  modelName,
		dim:    dim,
	}
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(e.model),
		Input: []string{text},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrEmbed, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: empty response from %s", model.ErrEmbed, e.model)
	}
	vec := resp.Data[0].Embedding
	l2normalize(vec)
	return vec, nil
}

func (e *OpenAIEmbedder) Dimensions() int { return e.dim }

func (e *OpenAIEmbedder) Model() string { return e.model }
