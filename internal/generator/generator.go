// ABOUTME: Generation controller with a single length-triggered retry
// ABOUTME: First attempt at 120 tokens, one retry at 150 when the model is cut off
package generator

import (
	"context"
	"fmt"

	"github.com/tl-kuno/ai-powered-portfolio/internal/llm"
	"github.com/tl-kuno/ai-powered-portfolio/internal/models"
)

const (
	// InitialMaxTokens is the budget for the first completion attempt
	InitialMaxTokens = 120
	// RetryMaxTokens is the budget when the first attempt was truncated
	RetryMaxTokens = 150
	// Temperature is fixed for all portfolio responses
	Temperature = 0.6
)

// CompletionClient is the slice of the language-model client the
// controller needs.
type CompletionClient interface {
	Complete(ctx context.Context, turns []models.ConversationTurn, maxTokens int, temperature float32) (*llm.Completion, error)
}

// Controller runs the two-attempt generation policy
type Controller struct {
	client CompletionClient
}

// New creates a Controller over a completion client
func New(client CompletionClient) *Controller {
	return &Controller{client: client}
}

// Generate requests a completion for the assembled messages. When the first
// attempt stops for length, exactly one retry runs with the larger budget and
// its text is returned regardless of how the retry finishes. Any other stop
// reason returns the first attempt's text as-is.
func (c *Controller) Generate(ctx context.Context, messages []models.ConversationTurn) (string, error) {
	completion, err := c.client.Complete(ctx, messages, InitialMaxTokens, Temperature)
	if err != nil {
		return "", fmt.Errorf("generating response: %w", err)
	}

	if completion.StopReason != llm.StopReasonLength {
		return completion.Text, nil
	}

	retried, err := c.client.Complete(ctx, messages, RetryMaxTokens, Temperature)
	if err != nil {
		return "", fmt.Errorf("retrying truncated response: %w", err)
	}
	return retried.Text, nil
}
