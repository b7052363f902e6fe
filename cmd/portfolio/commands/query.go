// ABOUTME: Query command runs retrieval only, without generating an answer
// ABOUTME: Useful for inspecting what the chat would ground its response on
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewQueryCmd creates the query command
func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [text]",
		Short: "Search the portfolio index",
		Long: `Search the portfolio index and print the matching chunks.

Runs the same retrieval the chat uses (the bio plus the top three other
matches) but skips answer generation, so you can see exactly what
context a question would be grounded on.`,
		Args: cobra.ExactArgs(1),
		RunE: runQuery,
		Example: `  portfolio query "healthcare background"
  portfolio query --format json "side projects"`,
	}

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.IncludeDebug = true

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}
	defer p.close()

	result, err := p.retriever.Retrieve(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("searching portfolio: %w", err)
	}

	out := cmd.OutOrStdout()
	if formatFlag == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if result.BioContent != "" {
		fmt.Fprintf(out, "Bio:\n%s\n\n", result.BioContent)
	}
	if len(result.RelevantChunks) == 0 {
		fmt.Fprintln(out, "No relevant chunks found.")
		return nil
	}
	for i, chunk := range result.RelevantChunks {
		if result.Debug != nil && i < len(result.Debug.Others) {
			m := result.Debug.Others[i]
			fmt.Fprintf(out, "[%d] %s (%s, score %.3f)\n%s\n\n", i+1, m.ID, m.Type, m.Score, chunk)
		} else {
			fmt.Fprintf(out, "[%d]\n%s\n\n", i+1, chunk)
		}
	}
	return nil
}
