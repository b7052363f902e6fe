// ABOUTME: OpenAI client for embeddings and chat completions
// ABOUTME: Uses text-embedding-3-small at 512 dimensions and gpt-4o-mini for generation
package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tl-kuno/ai-powered-portfolio/internal/models"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = "gpt-4o-mini"
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = openai.SmallEmbedding3
	// DefaultEmbeddingDimension keeps vectors small for index cost efficiency
	DefaultEmbeddingDimension = 512
)

// StopReason classifies why a completion ended
type StopReason string

const (
	StopReasonStop   StopReason = "stop"
	StopReasonLength StopReason = "length"
	StopReasonOther  StopReason = "other"
)

// Completion is the result of one chat completion call
type Completion struct {
	Text       string
	StopReason StopReason
}

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey             string
	ChatModel          string
	EmbeddingModel     openai.EmbeddingModel
	EmbeddingDimension int
	Timeout            time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:             apiKey,
		ChatModel:          DefaultChatModel,
		EmbeddingModel:     DefaultEmbeddingModel,
		EmbeddingDimension: DefaultEmbeddingDimension,
		Timeout:            30 * time.Second,
	}
}

// Client wraps the OpenAI API for embedding and completion calls
type Client struct {
	api       *openai.Client
	chatModel string
	embModel  openai.EmbeddingModel
	dimension int
	timeout   time.Duration
}

// NewClient creates an OpenAI client with default configuration
func NewClient(apiKey string) (*Client, error) {
	return NewClientWithConfig(DefaultConfig(apiKey))
}

// NewClientWithConfig creates an OpenAI client with custom configuration
func NewClientWithConfig(config *ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &Client{
		api:       openai.NewClient(config.APIKey),
		chatModel: config.ChatModel,
		embModel:  config.EmbeddingModel,
		dimension: config.EmbeddingDimension,
		timeout:   config.Timeout,
	}, nil
}

// Dimension returns the configured embedding dimension
func (c *Client) Dimension() int {
	return c.dimension
}

// EmbedMany embeds texts in one request. The result has the same length and
// order as the input.
func (c *Client) EmbedMany(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input:      texts,
		Model:      c.embModel,
		Dimensions: c.dimension,
	})
	if err != nil {
		return nil, fmt.Errorf("creating embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: sent %d texts, got %d vectors", len(texts), len(resp.Data))
	}

	vectors := make([][]float64, len(resp.Data))
	for i, d := range resp.Data {
		vector := make([]float64, len(d.Embedding))
		for j, v := range d.Embedding {
			vector[j] = float64(v)
		}
		vectors[i] = vector
	}
	return vectors, nil
}

// Embed embeds a single text
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := c.EmbedMany(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// Complete issues one chat completion call and reports the stop reason
func (c *Client) Complete(ctx context.Context, turns []models.ConversationTurn, maxTokens int, temperature float32) (*Completion, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, len(turns))
	for i, turn := range turns {
		messages[i] = openai.ChatCompletionMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("creating chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	choice := resp.Choices[0]
	return &Completion{
		Text:       choice.Message.Content,
		StopReason: mapFinishReason(choice.FinishReason),
	}, nil
}

func mapFinishReason(reason openai.FinishReason) StopReason {
	switch reason {
	case openai.FinishReasonStop:
		return StopReasonStop
	case openai.FinishReasonLength:
		return StopReasonLength
	default:
		return StopReasonOther
	}
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}
