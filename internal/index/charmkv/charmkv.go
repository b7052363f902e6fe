// ABOUTME: Vector index backed by Charm KV for persistent local storage
// ABOUTME: Stores one JSON vector row per key and brute-force scans on query
package charmkv

import (
	"context"
	"fmt"
	"sort"

	"github.com/tl-kuno/ai-powered-portfolio/internal/charm"
	"github.com/tl-kuno/ai-powered-portfolio/internal/index"
)

// Store is the slice of the charm client this index needs
type Store interface {
	SetJSON(key string, value interface{}) error
	GetJSON(key string, dest interface{}) error
	ListKeys(prefix string) ([]string, error)
}

// Index is a VectorIndex persisted in Charm KV
type Index struct {
	store Store
}

// New creates a Charm-KV-backed index over the given store
func New(store Store) *Index {
	return &Index{store: store}
}

// Upsert writes each vector as a JSON row keyed by chunk id
func (idx *Index) Upsert(ctx context.Context, vectors []index.Vector) error {
	for _, v := range vectors {
		if err := idx.store.SetJSON(charm.VectorKey(v.ID), v); err != nil {
			return fmt.Errorf("storing vector %s: %w", v.ID, err)
		}
	}
	return nil
}

// Query loads every stored vector, scores it against the query, and returns
// the topK filter-passing matches in descending score order
func (idx *Index) Query(ctx context.Context, vector []float64, topK int, filter *index.Filter) ([]index.Match, error) {
	keys, err := idx.store.ListKeys(charm.VectorPrefix)
	if err != nil {
		return nil, fmt.Errorf("listing vector keys: %w", err)
	}

	var matches []index.Match
	for _, key := range keys {
		var v index.Vector
		if err := idx.store.GetJSON(key, &v); err != nil {
			continue
		}
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
