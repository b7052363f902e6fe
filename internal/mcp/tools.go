// ABOUTME: MCP tool definitions and registration for the portfolio server
// ABOUTME: Exposes ask_portfolio and search_portfolio over stdio transport
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/tl-kuno/ai-powered-portfolio/internal/chat"
	"github.com/tl-kuno/ai-powered-portfolio/internal/retriever"
)

// RegisterTools registers the portfolio tools with the server
func RegisterTools(server *mcpserver.MCPServer, service *chat.Service, r *retriever.Retriever) *Handlers {
	handlers := &Handlers{
		service:   service,
		retriever: r,
	}

	server.AddTool(mcp.Tool{
		Name:        "ask_portfolio",
		Description: "Ask a question about Taylor Kuno's background, projects, and skills. Returns a conversational first-person answer grounded in the portfolio.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question about Taylor's work, projects, or background",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskPortfolio)

	server.AddTool(mcp.Tool{
		Name:        "search_portfolio",
		Description: "Search the portfolio for chunks relevant to a query. Returns the raw matching content without generating a conversational answer.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query for portfolio content",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchPortfolio)

	return handlers
}
