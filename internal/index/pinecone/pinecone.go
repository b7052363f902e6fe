// ABOUTME: Minimal REST client for a Pinecone serverless index
// ABOUTME: Upserts in batches and runs filtered top-k queries with metadata included
package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tl-kuno/ai-powered-portfolio/internal/index"
)

// upsertBatchSize bounds one upsert request, matching the index batch limit
const upsertBatchSize = 100

// Config holds connection settings for one Pinecone index
type Config struct {
	// Host is the index endpoint URL, e.g. https://portfolio-embeddings-xxxx.svc.us-east-1.pinecone.io
	Host    string
	APIKey  string
	Timeout time.Duration
}

// Index is a VectorIndex backed by the Pinecone REST API
type Index struct {
	host   string
	apiKey string
	client *http.Client
}

// New creates a Pinecone-backed index client
func New(cfg Config) (*Index, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("pinecone host is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("pinecone API key is required")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Index{
		host:   cfg.Host,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: timeout},
	}, nil
}

type upsertRequest struct {
	Vectors []index.Vector `json:"vectors"`
}

// Upsert writes vectors to the index in batches
func (idx *Index) Upsert(ctx context.Context, vectors []index.Vector) error {
	for start := 0; start < len(vectors); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(vectors) {
			end = len(vectors)
		}
		req := upsertRequest{Vectors: vectors[start:end]}
		if err := idx.postJSON(ctx, idx.host+"/vectors/upsert", req, nil); err != nil {
			return fmt.Errorf("upserting batch starting at %d: %w", start, err)
		}
	}
	return nil
}

type queryRequest struct {
	Vector          []float64                 `json:"vector"`
	TopK            int                       `json:"topK"`
	Filter          map[string]map[string]any `json:"filter,omitempty"`
	IncludeMetadata bool                      `json:"includeMetadata"`
}

type queryResponse struct {
	Matches []struct {
		ID       string                 `json:"id"`
		Score    float64                `json:"score"`
		Metadata map[string]interface{} `json:"metadata"`
	} `json:"matches"`
}

// Query runs a filtered top-k similarity search
func (idx *Index) Query(ctx context.Context, vector []float64, topK int, filter *index.Filter) ([]index.Match, error) {
	req := queryRequest{
		Vector:          vector,
		TopK:            topK,
		Filter:          encodeFilter(filter),
		IncludeMetadata: true,
	}

	var resp queryResponse
	if err := idx.postJSON(ctx, idx.host+"/query", req, &resp); err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}

	matches := make([]index.Match, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		matches = append(matches, index.Match{
			ID:       m.ID,
			Score:    m.Score,
			Metadata: m.Metadata,
		})
	}
	return matches, nil
}

// encodeFilter maps a Filter to Pinecone's {"field": {"$eq"/"$ne": value}} form
func encodeFilter(filter *index.Filter) map[string]map[string]any {
	if filter == nil {
		return nil
	}
	op := "$eq"
	if filter.Negate {
		op = "$ne"
	}
	return map[string]map[string]any{
		filter.Field: {op: filter.Value},
	}
}

func (idx *Index) postJSON(ctx context.Context, url string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", idx.apiKey)

	resp, err := idx.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("pinecone POST %s failed: %s", url, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
