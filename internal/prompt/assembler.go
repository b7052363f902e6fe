// ABOUTME: Assembles the ordered message sequence sent to the language model
// ABOUTME: System template plus the last six history turns plus the current query
package prompt

import (
	"fmt"
	"strings"

	"github.com/tl-kuno/ai-powered-portfolio/internal/models"
)

const (
	// HistoryWindow bounds how many trailing conversation turns are kept
	HistoryWindow = 6

	// chunkSeparator joins retrieved chunks inside the system prompt
	chunkSeparator = "\n\n---\n\n"

	placeholderBio    = "{bio_content}"
	placeholderChunks = "{relevant_chunks}"
)

// DefaultTemplate is the system prompt used when no custom template is configured
const DefaultTemplate = `You are representing Taylor Kuno, a software developer with a background in healthcare. Answer questions about Taylor in a warm, professional, first-person voice.

Use ONLY the portfolio information below. If the answer isn't in it, say so politely instead of guessing.

About Taylor:
{bio_content}

Relevant portfolio information:
{relevant_chunks}`

// Assembler builds prompts from a validated template
type Assembler struct {
	template string
}

// NewAssembler validates the template once at construction. A template
// missing either placeholder is a configuration error, not a per-request one.
func NewAssembler(template string) (*Assembler, error) {
	for _, placeholder := range []string{placeholderBio, placeholderChunks} {
		if !strings.Contains(template, placeholder) {
			return nil, fmt.Errorf("prompt template is missing required placeholder %s", placeholder)
		}
	}
	return &Assembler{template: template}, nil
}

// Assemble returns the full message sequence: one system turn, the last
// HistoryWindow turns of history in original order, and the current query
// as the final user turn.
func (a *Assembler) Assemble(retrieval *models.RetrievalResult, history []models.ConversationTurn, query string) []models.ConversationTurn {
	systemPrompt := strings.ReplaceAll(a.template, placeholderBio, retrieval.BioContent)
	systemPrompt = strings.ReplaceAll(systemPrompt, placeholderChunks, strings.Join(retrieval.RelevantChunks, chunkSeparator))

	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	messages := make([]models.ConversationTurn, 0, len(history)+2)
	messages = append(messages, models.ConversationTurn{Role: models.RoleSystem, Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, models.ConversationTurn{Role: models.RoleUser, Content: query})
	return messages
}
