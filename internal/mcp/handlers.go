// ABOUTME: MCP tool handler implementations for the portfolio server
// ABOUTME: Argument errors become tool results, not transport errors
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tl-kuno/ai-powered-portfolio/internal/chat"
	"github.com/tl-kuno/ai-powered-portfolio/internal/retriever"
)

// Handlers contains the handler functions for the portfolio tools
type Handlers struct {
	service   *chat.Service
	retriever *retriever.Retriever
}

// AskPortfolio handles the ask_portfolio tool
func (h *Handlers) AskPortfolio(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	response, err := h.service.Chat(ctx, question, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("answering question: %v", err)), nil
	}

	return mcp.NewToolResultText(response.Text), nil
}

// SearchPortfolio handles the search_portfolio tool
func (h *Handlers) SearchPortfolio(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	result, err := h.retriever.Retrieve(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("searching portfolio: %v", err)), nil
	}

	payload := struct {
		Bio    string   `json:"bio,omitempty"`
		Chunks []string `json:"chunks"`
	}{
		Bio:    result.BioContent,
		Chunks: result.RelevantChunks,
	}
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding results: %v", err)), nil
	}

	return mcp.NewToolResultText(string(encoded)), nil
}
