// ABOUTME: Chat command runs the interactive terminal chat
// ABOUTME: One-shot mode answers a single question without the TUI
package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tl-kuno/ai-powered-portfolio/internal/tui"
)

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [question]",
		Short: "Chat with the portfolio",
		Long: `Chat with the portfolio in the terminal.

With no arguments an interactive session opens; conversation history is
kept for the session so follow-up questions have context. With a question
argument the answer is printed directly and the command exits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runChat,
		Example: `  # Interactive session
  portfolio chat

  # One-shot question
  portfolio chat "What side projects are you working on?"`,
	}

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}
	defer p.close()

	if len(args) == 1 {
		response, err := p.service.Chat(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), response.Text)
		return nil
	}

	program := tea.NewProgram(tui.New(p.service), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running chat session: %w", err)
	}
	return nil
}
