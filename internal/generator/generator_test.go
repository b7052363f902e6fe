// ABOUTME: Tests for the two-attempt generation policy
// ABOUTME: Verifies token budgets, the length-triggered retry, and error surfacing
package generator

import (
	"context"
	"fmt"
	"testing"

	"github.com/tl-kuno/ai-powered-portfolio/internal/llm"
	"github.com/tl-kuno/ai-powered-portfolio/internal/models"
)

type recordedCall struct {
	maxTokens   int
	temperature float32
}

type mockClient struct {
	calls       []recordedCall
	completions []*llm.Completion
	errs        []error
}

func (m *mockClient) Complete(ctx context.Context, turns []models.ConversationTurn, maxTokens int, temperature float32) (*llm.Completion, error) {
	i := len(m.calls)
	m.calls = append(m.calls, recordedCall{maxTokens: maxTokens, temperature: temperature})
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	return m.completions[i], nil
}

var messages = []models.ConversationTurn{
	{Role: models.RoleSystem, Content: "system"},
	{Role: models.RoleUser, Content: "question"},
}

func TestGenerate_CleanStopIsSingleCall(t *testing.T) {
	client := &mockClient{
		completions: []*llm.Completion{
			{Text: "short answer", StopReason: llm.StopReasonStop},
		},
	}

	got, err := New(client).Generate(context.Background(), messages)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "short answer" {
		t.Errorf("Generate() = %q, want %q", got, "short answer")
	}
	if len(client.calls) != 1 {
		t.Fatalf("call count = %d, want 1", len(client.calls))
	}
	if client.calls[0].maxTokens != 120 || client.calls[0].temperature != 0.6 {
		t.Errorf("first call = %+v, want 120 tokens at 0.6", client.calls[0])
	}
}

func TestGenerate_LengthTriggersOneRetry(t *testing.T) {
	client := &mockClient{
		completions: []*llm.Completion{
			{Text: "truncated ans", StopReason: llm.StopReasonLength},
			{Text: "full answer", StopReason: llm.StopReasonStop},
		},
	}

	got, err := New(client).Generate(context.Background(), messages)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "full answer" {
		t.Errorf("Generate() = %q, want retry text", got)
	}
	if len(client.calls) != 2 {
		t.Fatalf("call count = %d, want 2", len(client.calls))
	}
	if client.calls[1].maxTokens != 150 {
		t.Errorf("retry budget = %d, want 150", client.calls[1].maxTokens)
	}
}

func TestGenerate_RetryTruncatedAgainStillReturns(t *testing.T) {
	client := &mockClient{
		completions: []*llm.Completion{
			{Text: "cut", StopReason: llm.StopReasonLength},
			{Text: "still cut", StopReason: llm.StopReasonLength},
		},
	}

	got, err := New(client).Generate(context.Background(), messages)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "still cut" {
		t.Errorf("Generate() = %q, want the retry text even when truncated", got)
	}
	if len(client.calls) != 2 {
		t.Errorf("call count = %d, want exactly 2", len(client.calls))
	}
}

func TestGenerate_OtherStopReasonDoesNotRetry(t *testing.T) {
	client := &mockClient{
		completions: []*llm.Completion{
			{Text: "filtered", StopReason: llm.StopReasonOther},
		},
	}

	got, err := New(client).Generate(context.Background(), messages)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "filtered" || len(client.calls) != 1 {
		t.Errorf("got %q after %d calls, want single-call passthrough", got, len(client.calls))
	}
}

func TestGenerate_FirstCallErrorSurfaced(t *testing.T) {
	client := &mockClient{errs: []error{fmt.Errorf("rate limited")}}

	if _, err := New(client).Generate(context.Background(), messages); err == nil {
		t.Error("expected first-call error to surface")
	}
	if len(client.calls) != 1 {
		t.Errorf("call count = %d, want no retry after an error", len(client.calls))
	}
}

func TestGenerate_RetryErrorSurfaced(t *testing.T) {
	client := &mockClient{
		completions: []*llm.Completion{
			{Text: "cut", StopReason: llm.StopReasonLength},
		},
		errs: []error{nil, fmt.Errorf("connection reset")},
	}

	if _, err := New(client).Generate(context.Background(), messages); err == nil {
		t.Error("expected retry error to surface")
	}
}
