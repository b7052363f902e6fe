// ABOUTME: Tests for the OpenAI client configuration and finish-reason mapping
// ABOUTME: API-dependent paths are covered by the generator and service tests via mocks
package llm

import (
	"context"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	if _, err := NewClient(""); err == nil {
		t.Error("expected error for empty API key")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("sk-test")

	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %q, want gpt-4o-mini", cfg.ChatModel)
	}
	if cfg.EmbeddingModel != openai.SmallEmbedding3 {
		t.Errorf("EmbeddingModel = %q, want text-embedding-3-small", cfg.EmbeddingModel)
	}
	if cfg.EmbeddingDimension != 512 {
		t.Errorf("EmbeddingDimension = %d, want 512", cfg.EmbeddingDimension)
	}
}

func TestEmbedMany_EmptyInput(t *testing.T) {
	client, err := NewClient("sk-test")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	vectors, err := client.EmbedMany(context.Background(), nil)
	if err != nil {
		t.Errorf("EmbedMany(nil) error = %v", err)
	}
	if vectors != nil {
		t.Errorf("EmbedMany(nil) = %v, want nil without an API call", vectors)
	}
}

func TestMapFinishReason(t *testing.T) {
	tests := []struct {
		reason openai.FinishReason
		want   StopReason
	}{
		{openai.FinishReasonStop, StopReasonStop},
		{openai.FinishReasonLength, StopReasonLength},
		{openai.FinishReasonContentFilter, StopReasonOther},
		{openai.FinishReasonNull, StopReasonOther},
	}

	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			if got := mapFinishReason(tt.reason); got != tt.want {
				t.Errorf("mapFinishReason(%q) = %q, want %q", tt.reason, got, tt.want)
			}
		})
	}
}
