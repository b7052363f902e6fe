// ABOUTME: Upload command chunks the profile, embeds it, and upserts vectors
// ABOUTME: Rebuilds the whole index from the profile document in one run
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tl-kuno/ai-powered-portfolio/internal/chunker"
	"github.com/tl-kuno/ai-powered-portfolio/internal/index"
	"github.com/tl-kuno/ai-powered-portfolio/internal/profile"
)

var uploadDryRun bool

// NewUploadCmd creates the upload command
func NewUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Chunk, embed, and upload the portfolio to the vector index",
		Long: `Chunk, embed, and upload the portfolio to the vector index.

Reads the profile document, splits it into semantic chunks, embeds each
chunk, and upserts the vectors. Chunk ids are stable, so re-running
replaces previous content in place.`,
		RunE: runUpload,
		Example: `  # Upload using PORTFOLIO_DATA (default data/portfolio.json)
  portfolio upload

  # Preview the chunks without calling any API
  portfolio upload --dry-run`,
	}

	cmd.Flags().BoolVar(&uploadDryRun, "dry-run", false, "Print chunks without embedding or uploading")

	return cmd
}

func runUpload(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	chunks := chunker.Build(doc)
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Built %d chunks from %s\n", len(chunks), cfg.ProfilePath)
	}

	if uploadDryRun {
		for _, c := range chunks {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-30s %s (%d chars)\n", c.ID, c.Type, len(c.Content))
		}
		return nil
	}

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}
	defer p.close()

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}

	ctx := cmd.Context()
	embeddings, err := p.client.EmbedMany(ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding chunks: %w", err)
	}

	vectors := make([]index.Vector, len(chunks))
	for i, c := range chunks {
		vectors[i] = index.Vector{
			ID:       c.ID,
			Values:   embeddings[i],
			Metadata: c.IndexMetadata(),
		}
	}

	if err := p.index.Upsert(ctx, vectors); err != nil {
		return fmt.Errorf("upserting vectors: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d vectors\n", len(vectors))
	}
	return nil
}
