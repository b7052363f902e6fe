// ABOUTME: Shared wiring for CLI commands
// ABOUTME: Builds the OpenAI client, vector index, and chat pipeline from config
package commands

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"

	"github.com/tl-kuno/ai-powered-portfolio/internal/charm"
	"github.com/tl-kuno/ai-powered-portfolio/internal/chat"
	"github.com/tl-kuno/ai-powered-portfolio/internal/config"
	"github.com/tl-kuno/ai-powered-portfolio/internal/generator"
	"github.com/tl-kuno/ai-powered-portfolio/internal/index"
	"github.com/tl-kuno/ai-powered-portfolio/internal/index/charmkv"
	"github.com/tl-kuno/ai-powered-portfolio/internal/index/pinecone"
	"github.com/tl-kuno/ai-powered-portfolio/internal/llm"
	"github.com/tl-kuno/ai-powered-portfolio/internal/prompt"
	"github.com/tl-kuno/ai-powered-portfolio/internal/retriever"
)

// pipeline bundles everything a command may need, plus a cleanup hook
type pipeline struct {
	cfg       *config.Config
	client    *llm.Client
	index     index.VectorIndex
	retriever *retriever.Retriever
	service   *chat.Service
	close     func()
}

// loadConfig loads .env (if present) and the environment configuration
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found: %v", err)
	}
	return config.Load()
}

// newPipeline wires the full chat pipeline. Pinecone is used when configured;
// otherwise vectors persist in Charm KV.
func newPipeline(cfg *config.Config) (*pipeline, error) {
	if err := cfg.RequireOpenAI(); err != nil {
		return nil, err
	}

	client, err := llm.NewClientWithConfig(&llm.ClientConfig{
		APIKey:             cfg.OpenAIKey,
		ChatModel:          cfg.ChatModel,
		EmbeddingModel:     openai.EmbeddingModel(cfg.EmbeddingModel),
		EmbeddingDimension: cfg.VectorDimension,
		Timeout:            cfg.OpenAITimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("creating OpenAI client: %w", err)
	}

	idx, closeIndex, err := newIndex(cfg)
	if err != nil {
		return nil, err
	}

	r := retriever.New(client, idx, cfg.IncludeDebug)

	assembler, err := prompt.NewAssembler(prompt.DefaultTemplate)
	if err != nil {
		closeIndex()
		return nil, err
	}

	return &pipeline{
		cfg:       cfg,
		client:    client,
		index:     idx,
		retriever: r,
		service:   chat.NewService(r, assembler, generator.New(client)),
		close:     closeIndex,
	}, nil
}

func newIndex(cfg *config.Config) (index.VectorIndex, func(), error) {
	if cfg.PineconeHost != "" {
		if err := cfg.RequirePinecone(); err != nil {
			return nil, nil, err
		}
		idx, err := pinecone.New(pinecone.Config{
			Host:   cfg.PineconeHost,
			APIKey: cfg.PineconeAPIKey,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("creating pinecone index: %w", err)
		}
		if verbose {
			log.Printf("Using Pinecone index at %s", cfg.PineconeHost)
		}
		return idx, func() {}, nil
	}

	client, err := charm.NewClient(&charm.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.AutoSync,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("opening charm kv: %w", err)
	}
	if verbose {
		log.Printf("Using Charm KV index (db %s)", cfg.CharmDBName)
	}
	return charmkv.New(client), func() { _ = client.Close() }, nil
}
