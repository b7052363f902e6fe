// ABOUTME: Tests for environment-based configuration
// ABOUTME: Verifies defaults, overrides, and validation errors
package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %q", cfg.ChatModel)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %q", cfg.EmbeddingModel)
	}
	if cfg.VectorDimension != 512 {
		t.Errorf("VectorDimension = %d, want 512", cfg.VectorDimension)
	}
	if cfg.OpenAITimeout != 30*time.Second {
		t.Errorf("OpenAITimeout = %v", cfg.OpenAITimeout)
	}
	if cfg.ProfilePath != "data/portfolio.json" {
		t.Errorf("ProfilePath = %q", cfg.ProfilePath)
	}
	if cfg.ServerAddr != ":8000" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr)
	}
	if cfg.CharmDBName != "portfolio" {
		t.Errorf("CharmDBName = %q", cfg.CharmDBName)
	}
	if cfg.IncludeDebug {
		t.Error("IncludeDebug should default to false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	os.Clearenv()
	t.Setenv("PORTFOLIO_CHAT_MODEL", "gpt-4o")
	t.Setenv("PORTFOLIO_VECTOR_DIMENSION", "1536")
	t.Setenv("PORTFOLIO_DATA", "/srv/portfolio.json")
	t.Setenv("PORTFOLIO_DEBUG", "true")
	t.Setenv("OPENAI_TIMEOUT", "10s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ChatModel != "gpt-4o" {
		t.Errorf("ChatModel = %q", cfg.ChatModel)
	}
	if cfg.VectorDimension != 1536 {
		t.Errorf("VectorDimension = %d", cfg.VectorDimension)
	}
	if cfg.ProfilePath != "/srv/portfolio.json" {
		t.Errorf("ProfilePath = %q", cfg.ProfilePath)
	}
	if !cfg.IncludeDebug {
		t.Error("IncludeDebug should be true")
	}
	if cfg.OpenAITimeout != 10*time.Second {
		t.Errorf("OpenAITimeout = %v", cfg.OpenAITimeout)
	}
}

func TestLoad_InvalidDimension(t *testing.T) {
	os.Clearenv()
	t.Setenv("PORTFOLIO_VECTOR_DIMENSION", "-1")

	if _, err := Load(); err == nil {
		t.Error("expected validation error for negative dimension")
	}
}

func TestRequireOpenAI(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireOpenAI(); err == nil {
		t.Error("expected error without API key")
	}

	cfg.OpenAIKey = "sk-test"
	if err := cfg.RequireOpenAI(); err != nil {
		t.Errorf("RequireOpenAI() = %v with key set", err)
	}
}

func TestRequirePinecone(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		key     string
		wantErr bool
	}{
		{"both set", "index.svc.pinecone.io", "pc-key", false},
		{"missing host", "", "pc-key", true},
		{"missing key", "index.svc.pinecone.io", "", true},
		{"neither", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{PineconeHost: tt.host, PineconeAPIKey: tt.key}
			if err := cfg.RequirePinecone(); (err != nil) != tt.wantErr {
				t.Errorf("RequirePinecone() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
