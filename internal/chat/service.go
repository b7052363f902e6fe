// ABOUTME: Chat service wiring retrieval, prompt assembly, and generation
// ABOUTME: Validates input before any network call is made
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/tl-kuno/ai-powered-portfolio/internal/models"
	"github.com/tl-kuno/ai-powered-portfolio/internal/prompt"
)

// Retriever fetches the bio and relevant portfolio chunks for a query
type Retriever interface {
	Retrieve(ctx context.Context, query string) (*models.RetrievalResult, error)
}

// Generator produces the assistant response for an assembled message sequence
type Generator interface {
	Generate(ctx context.Context, messages []models.ConversationTurn) (string, error)
}

// Response is the outcome of one chat exchange
type Response struct {
	Text  string                 `json:"response"`
	Debug *models.RetrievalDebug `json:"debug,omitempty"`
}

// Service answers portfolio questions over a retriever and generator
type Service struct {
	retriever Retriever
	assembler *prompt.Assembler
	generator Generator
}

// NewService wires the chat pipeline
func NewService(retriever Retriever, assembler *prompt.Assembler, generator Generator) *Service {
	return &Service{
		retriever: retriever,
		assembler: assembler,
		generator: generator,
	}
}

// Chat validates the query and history, retrieves context, and generates a
// response. Validation failures return before any external call.
func (s *Service) Chat(ctx context.Context, query string, history []models.ConversationTurn) (*Response, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must not be empty")
	}
	for i, turn := range history {
		if err := turn.Validate(); err != nil {
			return nil, fmt.Errorf("history turn %d: %w", i, err)
		}
	}

	retrieval, err := s.retriever.Retrieve(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("retrieving context: %w", err)
	}

	messages := s.assembler.Assemble(retrieval, history, query)

	text, err := s.generator.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("generating answer: %w", err)
	}

	return &Response{Text: text, Debug: retrieval.Debug}, nil
}
