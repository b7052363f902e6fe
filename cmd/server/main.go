// ABOUTME: Standalone entry point for the portfolio HTTP API
// ABOUTME: Minimal deployment target equivalent to `portfolio serve`
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/joho/godotenv"

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
	"github.com/tl-kuno/ai-powered-portfolio/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.RequireOpenAI(); err != nil {
		return err
	}

	client, err := llm.NewClientWithConfig(&llm.ClientConfig{
		APIKey:             cfg.OpenAIKey,
		ChatModel:          cfg.ChatModel,
		EmbeddingModel:     openai.EmbeddingModel(cfg.EmbeddingModel),
		EmbeddingDimension: cfg.VectorDimension,
		Timeout:            cfg.OpenAITimeout,
	})
	if err != nil {
		return err
	}

	var idx index.VectorIndex
	if cfg.PineconeHost != "" {
		if err := cfg.RequirePinecone(); err != nil {
			return err
		}
		idx, err = pinecone.New(pinecone.Config{Host: cfg.PineconeHost, APIKey: cfg.PineconeAPIKey})
		if err != nil {
			return err
		}
	} else {
		kvClient, err := charm.NewClient(&charm.Config{
			Host:     cfg.CharmHost,
			DBName:   cfg.CharmDBName,
			AutoSync: cfg.AutoSync,
		})
		if err != nil {
			return err
		}
		defer kvClient.Close()
		idx = charmkv.New(kvClient)
	}

	assembler, err := prompt.NewAssembler(prompt.DefaultTemplate)
	if err != nil {
		return err
	}

	service := chat.NewService(
		retriever.New(client, idx, cfg.IncludeDebug),
		assembler,
		generator.New(client),
	)

	httpServer := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           server.New(service, cfg.AllowOrigin),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("Portfolio API listening on %s", cfg.ServerAddr)
	return httpServer.ListenAndServe()
}
