// ABOUTME: Retriever runs the fixed bio-plus-top-3 query policy against the vector index
// ABOUTME: Embeds the query once, issues two filtered queries, and shapes the result
package retriever

import (
	"context"
	"fmt"

	"github.com/tl-kuno/ai-powered-portfolio/internal/index"
	"github.com/tl-kuno/ai-powered-portfolio/internal/models"
)

const (
	// bioTopK always surfaces the single bio chunk
	bioTopK = 1
	// othersTopK bounds the non-bio matches
	othersTopK = 3
)

// Embedder maps query text to a similarity vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Retriever orchestrates retrieval over an embedder and a vector index
type Retriever struct {
	embedder     Embedder
	index        index.VectorIndex
	includeDebug bool
}

// New creates a Retriever. When includeDebug is set, results carry per-match
// id/type/score diagnostics.
func New(embedder Embedder, idx index.VectorIndex, includeDebug bool) *Retriever {
	return &Retriever{
		embedder:     embedder,
		index:        idx,
		includeDebug: includeDebug,
	}
}

// Retrieve embeds the query and returns the bio chunk plus up to three other
// relevant chunks. A missing bio match leaves BioContent empty; scores never
// filter matches out, only empty content does.
func (r *Retriever) Retrieve(ctx context.Context, query string) (*models.RetrievalResult, error) {
	vector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	bioMatches, err := r.index.Query(ctx, vector, bioTopK, index.TypeEquals(string(models.ChunkTypeBio)))
	if err != nil {
		return nil, fmt.Errorf("querying bio chunk: %w", err)
	}

	otherMatches, err := r.index.Query(ctx, vector, othersTopK, index.TypeNotEquals(string(models.ChunkTypeBio)))
	if err != nil {
		return nil, fmt.Errorf("querying relevant chunks: %w", err)
	}

	result := &models.RetrievalResult{}
	if r.includeDebug {
		result.Debug = &models.RetrievalDebug{}
	}

	if len(bioMatches) > 0 {
		result.BioContent = matchContent(bioMatches[0])
		if result.Debug != nil {
			result.Debug.Bio = matchDebug(bioMatches[0])
		}
	}

	for _, m := range otherMatches {
		if content := matchContent(m); content != "" {
			result.RelevantChunks = append(result.RelevantChunks, content)
		}
		if result.Debug != nil {
			result.Debug.Others = append(result.Debug.Others, *matchDebug(m))
		}
	}

	return result, nil
}

func matchContent(m index.Match) string {
	content, _ := m.Metadata["content"].(string)
	return content
}

func matchDebug(m index.Match) *models.MatchDebug {
	chunkType, _ := m.Metadata["type"].(string)
	return &models.MatchDebug{
		ID:    m.ID,
		Type:  chunkType,
		Score: m.Score,
	}
}
