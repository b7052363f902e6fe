// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to query the portfolio via stdio
package commands

import (
	"log"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/tl-kuno/ai-powered-portfolio/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents.

Runs the portfolio as an MCP (Model Context Protocol) server over stdio,
exposing ask_portfolio and search_portfolio tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  portfolio mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "portfolio": {
  #       "command": "portfolio",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}
	defer p.close()

	srv := mcpserver.NewMCPServer(
		"Portfolio Chat",
		versionInfo.Version,
	)
	mcp.RegisterTools(srv, p.service, p.retriever)

	if !quiet {
		log.Println("Portfolio MCP server starting on stdio...")
	}
	return mcpserver.ServeStdio(srv)
}
