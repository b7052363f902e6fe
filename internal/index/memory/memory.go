// ABOUTME: In-memory vector index using brute-force cosine similarity
// ABOUTME: Backs tests and composes with persistent backends; safe for concurrent use
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tl-kuno/ai-powered-portfolio/internal/index"
)

// Index is a filterable in-memory vector store keyed by id
type Index struct {
	mu      sync.RWMutex
	vectors map[string]index.Vector
}

// New creates an empty in-memory index
func New() *Index {
	return &Index{
		vectors: make(map[string]index.Vector),
	}
}

// Upsert inserts or replaces vectors by id
func (idx *Index) Upsert(ctx context.Context, vectors []index.Vector) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for _, v := range vectors {
		idx.vectors[v.ID] = v
	}
	return nil
}

// Query scores every stored vector against the query and returns the topK
// filter-passing matches in descending score order. Ties break on id so
// result order is stable.
func (idx *Index) Query(ctx context.Context, vector []float64, topK int, filter *index.Filter) ([]index.Match, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var matches []index.Match
	for _, v := range idx.vectors {
		if !filter.Matches(v.Metadata) {
			continue
		}
		matches = append(matches, index.Match{
			ID:       v.ID,
			Score:    index.CosineSimilarity(vector, v.Values),
			Metadata: v.Metadata,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})

	if topK >= 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// Len reports how many vectors are stored
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.vectors)
}
