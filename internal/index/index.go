// ABOUTME: VectorIndex contract shared by the Pinecone, in-memory, and Charm KV backends
// ABOUTME: Defines vectors, matches, metadata filters, and cosine scoring helpers
package index

import (
	"context"
	"math"
)

// Vector is one row of the index: a stable id, embedding values, and
// denormalized metadata so retrieval never needs a second fetch.
type Vector struct {
	ID       string                 `json:"id"`
	Values   []float64              `json:"values"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Match is one similarity query result
type Match struct {
	ID       string                 `json:"id"`
	Score    float64                `json:"score"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Filter is an equality or not-equal predicate over one metadata field
type Filter struct {
	Field  string
	Value  string
	Negate bool
}

// TypeEquals filters matches to a single chunk type
func TypeEquals(value string) *Filter {
	return &Filter{Field: "type", Value: value}
}

// TypeNotEquals filters matches to everything but the given chunk type
func TypeNotEquals(value string) *Filter {
	return &Filter{Field: "type", Value: value, Negate: true}
}

// Matches reports whether the metadata satisfies the filter. A nil filter
// matches everything.
func (f *Filter) Matches(metadata map[string]interface{}) bool {
	if f == nil {
		return true
	}
	value, _ := metadata[f.Field].(string)
	if f.Negate {
		return value != f.Value
	}
	return value == f.Value
}

// VectorIndex stores embedding vectors and answers filtered top-k queries.
// Implementations must be safe for use across concurrent requests.
type VectorIndex interface {
	// Upsert inserts or replaces vectors by id
	Upsert(ctx context.Context, vectors []Vector) error

	// Query returns up to topK matches sorted by descending similarity
	Query(ctx context.Context, vector []float64, topK int, filter *Filter) ([]Match, error)
}

// CosineSimilarity scores two vectors; mismatched or zero vectors score 0
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
